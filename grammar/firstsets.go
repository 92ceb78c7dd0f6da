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

package grammar

import "github.com/popham/magicate/token"

// ComputeFirstSets populates DFA.First for every DFA in g, mirroring
// CPython's pgen calcfirstset: the first set of a DFA is the set of
// terminal types that can begin its derivation,
// computed from its initial state's outgoing arcs only (a table-driven
// LL(1) parser only ever needs to decide, at a nonterminal's initial
// state, which terminal leads it to push that nonterminal) — arcs to a
// nonterminal contribute that nonterminal's own first set, recursively.
//
// It must run after TranslateLabels, since it inspects each label's
// resolved Type.
func ComputeFirstSets(g *Grammar) error {
	for i := range g.DFAs {
		d := &g.DFAs[i]
		d.First = map[token.Type]bool{}
	}
	inProgress := make([]bool, len(g.DFAs))
	done := make([]bool, len(g.DFAs))
	for i := range g.DFAs {
		if err := firstSetFor(g, i, inProgress, done); err != nil {
			return err
		}
	}
	return nil
}

func firstSetFor(g *Grammar, idx int, inProgress, done []bool) error {
	if done[idx] {
		return nil
	}
	if inProgress[idx] {
		// Left-recursive cycle: the in-progress call already owns
		// whatever this DFA contributes; nothing further to add here.
		return nil
	}
	inProgress[idx] = true
	defer func() { inProgress[idx] = false }()

	d := &g.DFAs[idx]
	initial := d.States[d.Initial]
	for _, arc := range initial.Arcs {
		lb := g.Labels[arc.Label]
		if lb.Type.IsTerminal() {
			d.First[lb.Type] = true
			continue
		}
		depIdx := int(lb.Type - token.NTOffset)
		if depIdx < 0 || depIdx >= len(g.DFAs) {
			continue
		}
		if err := firstSetFor(g, depIdx, inProgress, done); err != nil {
			return err
		}
		for t := range g.DFAs[depIdx].First {
			d.First[t] = true
		}
	}
	done[idx] = true
	return nil
}
