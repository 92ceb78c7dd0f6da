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

// Package rewrite implements a two-pass tree walk that computes the
// exact output size and then produces the rewritten bytes, substituting
// a method-call encoding at every extended-operator site (dropping the
// whitespace immediately around each such operator) while copying every
// other source byte verbatim.
package rewrite

import "github.com/popham/magicate/parser"

// PlanLength returns the total size delta the tree introduces. Output
// length is len(source) + PlanLength(tree).
//
// A node with one or more extended-operator children (found directly, or
// one level down through a wrapping nonterminal such as augassign — see
// extraOpSite) is an operator chain: it gains one '(' per operator plus
// one ')' once each operator's right operand has been emitted, each
// operator itself is replaced by its method-call text, and the
// whitespace immediately surrounding each operator is dropped along with
// the operator's own span, mirroring the bytes Emit actually writes for
// such a node. Every other node passes its children's deltas through
// unchanged.
func PlanLength(n *parser.Node) int {
	if n.IsTerminal() {
		return 0
	}

	children := n.Children
	k := 0
	for _, c := range children {
		if _, ok := extraOpSite(c); ok {
			k++
		}
	}
	if k == 0 {
		delta := 0
		for _, c := range children {
			delta += PlanLength(c)
		}
		return delta
	}

	delta := k
	for i := 0; i < len(children); {
		c := children[i]
		op, ok := extraOpSite(c)
		if !ok {
			delta += PlanLength(c)
			i++
			continue
		}
		if e, ok := lastEnd(children[i-1]); ok {
			delta -= op.Start - e
		}
		delta -= op.End - op.Start
		delta += len(op.Type.Replacement())
		right := children[i+1]
		if s, ok := firstStart(right); ok && s > op.End {
			delta -= s - op.End
		}
		delta += PlanLength(right)
		delta++ // closing ')'
		i += 2
	}
	return delta
}

// lastEnd returns the End of the last terminal reached by a rightmost
// descent into n, mirroring firstStart.
func lastEnd(n *parser.Node) (int, bool) {
	if n.IsTerminal() {
		return n.End, true
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if e, ok := lastEnd(n.Children[i]); ok {
			return e, true
		}
	}
	return 0, false
}
