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

// Package parser implements an LL(1) table-driven parser that drives the
// DFAs built by package grammar with tokens from package lexer,
// producing a concrete parse tree.
package parser

import "github.com/popham/magicate/token"

// Node is one parse-tree node: either a terminal leaf (a token) or a
// nonterminal with children. Children are held in a flat slice rather
// than linked individually, the way a single growable arena keeps a
// parse tree's allocation count low; see DESIGN.md for where that
// layout is grounded.
type Node struct {
	Type     token.Type
	Start    int // byte offset into the source, terminals only
	End      int
	Line     int
	Col      int
	Children []*Node
}

// Text returns the node's source span. Nonterminal nodes always have an
// empty span (Start == End == 0): the parser sets Start/End on terminal
// nodes only.
func (n *Node) Text(src []byte) []byte {
	return src[n.Start:n.End]
}

// IsTerminal reports whether n represents a token rather than a parsed
// nonterminal.
func (n *Node) IsTerminal() bool {
	return n.Type.IsTerminal()
}
