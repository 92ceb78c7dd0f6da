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

package rewrite

import (
	"bytes"
	"fmt"

	"github.com/popham/magicate/grammar"
	"github.com/popham/magicate/parser"
)

// emitter holds the two cursors the walk threads through: source (how
// far the original bytes have been copied) and out (the buffer under
// construction). Unlike the reference, the output is a growable
// []byte rather than a single preallocated C buffer with a NUL
// terminator: PlanLength still gives the exact final length, so the
// buffer is pre-sized with that capacity, but Go slices carry their own
// length and need no sentinel byte.
type emitter struct {
	src          []byte
	source       int
	out          *bytes.Buffer
	arithType    int
	termType     int
	exprStmtType int
	hasArith     bool
	hasTerm      bool
	hasExprStmt  bool
}

// Emit runs the emit tree walk over tree (parsed from src against g),
// returning the rewritten bytes. It assumes tree was produced by a
// successful parser.Parse over exactly src; behavior is undefined
// otherwise.
func Emit(g *grammar.Grammar, src []byte, tree *parser.Node) ([]byte, error) {
	outLen := len(src) + PlanLength(tree)
	e := &emitter{
		src:    src,
		out:    bytes.NewBuffer(make([]byte, 0, outLen)),
		source: 0,
	}
	if t, ok := g.TypeOf("arith_expr"); ok {
		e.arithType, e.hasArith = int(t), true
	}
	if t, ok := g.TypeOf("term"); ok {
		e.termType, e.hasTerm = int(t), true
	}
	if t, ok := g.TypeOf("expr_stmt"); ok {
		e.exprStmtType, e.hasExprStmt = int(t), true
	}

	e.walk(tree)
	if e.source < len(src) {
		e.out.Write(src[e.source:])
		e.source = len(src)
	}

	if e.out.Len() != outLen {
		return nil, fmt.Errorf("rewrite: emitted %d bytes, planned %d", e.out.Len(), outLen)
	}
	return e.out.Bytes(), nil
}

func (e *emitter) copyTo(end int) {
	if end > e.source {
		e.out.Write(e.src[e.source:end])
		e.source = end
	}
}

func (e *emitter) walk(n *parser.Node) {
	if n.IsTerminal() {
		if n.End > n.Start {
			e.copyTo(n.End)
		}
		return
	}

	if (e.hasArith && int(n.Type) == e.arithType) ||
		(e.hasTerm && int(n.Type) == e.termType) ||
		(e.hasExprStmt && int(n.Type) == e.exprStmtType) {
		e.walkOperatorChain(n)
		return
	}

	for _, c := range n.Children {
		e.walk(c)
	}
}

// extraOpSite reports whether c is an extended-operator occurrence: either
// c is the operator terminal itself (the arith_expr/term case), or c is a
// nonterminal wrapping exactly one such terminal (the augassign case,
// where the operator sits one level below expr_stmt). It returns the
// operator terminal itself so callers never need to know which shape
// matched.
func extraOpSite(c *parser.Node) (*parser.Node, bool) {
	if c.IsTerminal() {
		if c.Type.IsExtraOp() {
			return c, true
		}
		return nil, false
	}
	if len(c.Children) == 1 && c.Children[0].IsTerminal() && c.Children[0].Type.IsExtraOp() {
		return c.Children[0], true
	}
	return nil, false
}

// firstStart returns the Start of the first terminal reached by a
// leftmost descent into n, skipping over nonterminals whose own Start/End
// are never populated by the parser.
func firstStart(n *parser.Node) (int, bool) {
	if n.IsTerminal() {
		return n.Start, true
	}
	for _, c := range n.Children {
		if s, ok := firstStart(c); ok {
			return s, true
		}
	}
	return 0, false
}

// walkOperatorChain rewrites an arith_expr/term/expr_stmt chain's
// extended-operator occurrences to method calls: k leading '(' characters
// realize left-to-right associativity for the chain, each later closed by
// its own ')' once its right operand has been emitted. The whitespace
// surrounding an operator token is not itself part of either operand, so
// it is dropped rather than copied.
func (e *emitter) walkOperatorChain(n *parser.Node) {
	children := n.Children
	k := 0
	for _, c := range children {
		if _, ok := extraOpSite(c); ok {
			k++
		}
	}
	if k == 0 {
		for _, c := range children {
			e.walk(c)
		}
		return
	}

	if s, ok := firstStart(children[0]); ok {
		e.copyTo(s)
	}
	for i := 0; i < k; i++ {
		e.out.WriteByte('(')
	}

	for i := 0; i < len(children); {
		c := children[i]
		if op, ok := extraOpSite(c); ok {
			e.source = op.Start
			e.out.WriteString(op.Type.Replacement())
			e.source = op.End
			right := children[i+1]
			if s, ok := firstStart(right); ok && s > e.source {
				e.source = s
			}
			e.walk(right)
			e.out.WriteByte(')')
			i += 2
			continue
		}
		e.walk(c)
		i++
	}
}
