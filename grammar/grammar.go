// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package grammar implements the LL(1) grammar runtime and its one-time
// label translator, following the shape of CPython's
// Parser/grammar.c (newgrammar/adddfa/addstate/addarc/addlabel/
// translatelabels).
//
// Unlike the reference, nothing here is read off disk: the precompiled
// grammar a real pgen would emit is instead built once, in Go, by
// compiling a small set of EBNF-like rules (Seq/Alt/Star/Opt/Ref/Lit)
// into DFAs via Thompson construction followed by subset construction —
// see compile.go. That compiler stands in for pgen; its product still
// goes through the same label translation and first-set computation any
// precompiled grammar would.
package grammar

import "github.com/popham/magicate/token"

// Label is either a terminal (Type in [0, token.NTOffset)) or a
// nonterminal (Type >= token.NTOffset). Before translation, Type may
// instead be token.NAME (a bare name: a nonterminal or a token-class
// name such as "NAME") or token.STRING (a quoted literal, e.g. "'+'" or
// "'if'") with Str holding the raw text; TranslateLabels resolves every
// label's Type to a concrete terminal or nonterminal id exactly once.
type Label struct {
	Type token.Type
	Str  string
}

// emptyLabel occupies index 0 of every grammar's label list and is never
// translated or dereferenced by an arc, matching the reference's
// reserved EMPTY label.
var emptyLabel = Label{Type: -1}

// Arc carries a label index (into the grammar's label list) and the
// index of the destination state within the same DFA.
type Arc struct {
	Label int
	To    int
}

// State is one DFA state: its outgoing arcs and whether it is an
// accepting state (a state at which a nonterminal's derivation may
// legally end).
type State struct {
	Arcs   []Arc
	Accept bool
}

// DFA represents one grammar nonterminal's state machine.
type DFA struct {
	Type    token.Type // nonterminal id, >= token.NTOffset
	Name    string
	States  []State
	Initial int
	// First is the first-set used to decide, while parsing, whether an
	// incoming token may begin a derivation of this nonterminal. It is
	// populated by ComputeFirstSets, which must run after translation.
	First map[token.Type]bool
}

// Grammar is the immutable, read-only-after-construction runtime
// representation consumed by the parser.
type Grammar struct {
	Start  token.Type
	DFAs   []DFA
	Labels []Label
}

// TypeOf returns the nonterminal type assigned to the DFA named name,
// and true if one exists. The emitter uses this to recognize
// arith_expr/term by name without hardcoding their (build-dependent)
// numeric ids.
func (g *Grammar) TypeOf(name string) (token.Type, bool) {
	for _, d := range g.DFAs {
		if d.Name == name {
			return d.Type, true
		}
	}
	return 0, false
}

// FindDFA returns the DFA for nonterminal type t. The reference
// PyGrammar_FindDFA computes g.dfas[t - NT_OFFSET] directly; this holds
// here too because Compile assigns nonterminal ids sequentially as DFAs
// are appended.
func (g *Grammar) FindDFA(t token.Type) *DFA {
	idx := int(t - token.NTOffset)
	if idx < 0 || idx >= len(g.DFAs) {
		return nil
	}
	d := &g.DFAs[idx]
	if d.Type != t {
		return nil
	}
	return d
}
