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

package parser

import (
	"github.com/popham/magicate/grammar"
	"github.com/popham/magicate/lexer"
	"github.com/popham/magicate/token"
)

// tokenSource is the subset of *lexer.Lexer the parser pulls from.
type tokenSource interface {
	Next() (lexer.Token, error)
}

// frame is one stack entry: the DFA currently being matched, the state
// within it, the parse-tree node it is building, and where to resume
// the parent frame once this one reduces.
type frame struct {
	dfa         *grammar.DFA
	state       int
	node        *Node
	parent      *frame
	returnState int
}

// Parser drives grammar g's DFAs with tokens pulled from a tokenSource,
// producing a concrete Node tree rooted at g.Start.
type Parser struct {
	g   *grammar.Grammar
	src []byte
}

// New returns a Parser for grammar g over source src. src is needed only
// to recover a keyword arc's matching token text and to build leaf
// spans; the grammar itself holds no reference to it.
func New(g *grammar.Grammar, src []byte) *Parser {
	return &Parser{g: g, src: src}
}

// Parse runs the table-driven LL(1) algorithm to completion, returning
// the tree rooted at the grammar's start nonterminal. It halts on the
// first syntax error or the first tokenizer error, discarding the
// partial tree.
func (p *Parser) Parse(lex tokenSource) (*Node, error) {
	startDFA := p.g.FindDFA(p.g.Start)
	root := &Node{Type: p.g.Start}
	stack := &frame{dfa: startDFA, state: startDFA.Initial, node: root}

	tok, err := lex.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := stack
		st := top.dfa.States[top.state]

		matched := false
		shifted := false
		var expected []token.Type

		for _, arc := range st.Arcs {
			lb := p.g.Labels[arc.Label]

			if lb.Type.IsTerminal() {
				expected = append(expected, lb.Type)
				if lb.Type != tok.Type {
					continue
				}
				if lb.Str != "" && lb.Str != string(tok.Text(p.src)) {
					continue
				}
				top.node.Children = append(top.node.Children, &Node{
					Type:  tok.Type,
					Start: tok.Start,
					End:   tok.End,
					Line:  tok.Line,
					Col:   tok.Col,
				})
				top.state = arc.To
				matched = true
				shifted = true
				break
			}

			// Nonterminal arc: push a frame for it if the incoming
			// token can begin its derivation.
			child := p.g.FindDFA(lb.Type)
			if child == nil || !child.First[tok.Type] {
				continue
			}
			childNode := &Node{Type: lb.Type}
			top.node.Children = append(top.node.Children, childNode)
			stack = &frame{
				dfa:         child,
				state:       child.Initial,
				node:        childNode,
				parent:      top,
				returnState: arc.To,
			}
			matched = true
			break
		}

		if matched {
			if shifted {
				tok, err = lex.Next()
				if err != nil {
					return nil, err
				}
			}
			continue
		}

		// No arc matched this token in the current state.
		if !st.Accept {
			return nil, &SyntaxError{
				Line:     tok.Line,
				Col:      tok.Col,
				Got:      tok.Type,
				GotText:  string(tok.Text(p.src)),
				Expected: expected,
			}
		}

		// Epsilon-reduce: this nonterminal is complete; resume the
		// parent at the state recorded when it was pushed.
		returnState := top.returnState
		stack = top.parent
		if stack == nil {
			return root, nil
		}
		stack.state = returnState
	}
}
