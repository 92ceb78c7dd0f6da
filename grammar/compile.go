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

import (
	"fmt"
	"sort"

	"github.com/popham/magicate/token"
)

// RuleSet maps a nonterminal name to the Expr describing its body.
// Compile turns a RuleSet plus a start rule name into a raw
// (untranslated) Grammar: every Ref/Lit becomes a raw Label (NAME or
// STRING), ready for TranslateLabels.
type RuleSet map[string]Expr

// rawLabels dedups labels the way the reference's addlabel does,
// assigning index 0 to the reserved EMPTY label.
type rawLabels struct {
	labels []Label
	index  map[Label]int
}

func newRawLabels() *rawLabels {
	rl := &rawLabels{index: map[Label]int{}}
	rl.labels = append(rl.labels, emptyLabel)
	return rl
}

func (rl *rawLabels) add(lb Label) int {
	if i, ok := rl.index[lb]; ok {
		return i
	}
	i := len(rl.labels)
	rl.labels = append(rl.labels, lb)
	rl.index[lb] = i
	return i
}

// Compile builds a raw Grammar from rules, rooted at start. The result
// still needs TranslateLabels (to resolve NAME/STRING labels to concrete
// token or nonterminal ids) and ComputeFirstSets (to populate DFA.First)
// before a Parser can drive it.
func Compile(rules RuleSet, start string) (*Grammar, error) {
	if _, ok := rules[start]; !ok {
		return nil, fmt.Errorf("grammar: no rule named %q", start)
	}

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic DFA ordering across builds

	rl := newRawLabels()
	g := &Grammar{}

	var startType token.Type
	for i, name := range names {
		dfaType := token.NTOffset + token.Type(i)
		if name == start {
			startType = dfaType
		}
		d, err := compileRule(rules[name], rl)
		if err != nil {
			return nil, fmt.Errorf("grammar: rule %q: %w", name, err)
		}
		d.Type = dfaType
		d.Name = name
		g.DFAs = append(g.DFAs, d)
	}
	g.Labels = rl.labels
	g.Start = startType
	return g, nil
}

// -- Thompson construction (Expr -> NFA with epsilon arcs) --

type nfaEdge struct {
	label int // raw label index, or epsilon if isEps
	isEps bool
	to    int
}

type nfaBuilder struct {
	trans [][]nfaEdge
	rl    *rawLabels
}

func (b *nfaBuilder) newState() int {
	b.trans = append(b.trans, nil)
	return len(b.trans) - 1
}

func (b *nfaBuilder) addEdge(from int, lbl int, isEps bool, to int) {
	b.trans[from] = append(b.trans[from], nfaEdge{label: lbl, isEps: isEps, to: to})
}

// compile returns the (start, accept) state pair for the fragment
// realizing node, via the standard Thompson construction.
func (b *nfaBuilder) compile(node Expr) (start, accept int, err error) {
	switch n := node.(type) {
	case refExpr:
		lbl := b.rl.add(Label{Type: token.NAME, Str: n.name})
		s, e := b.newState(), b.newState()
		b.addEdge(s, lbl, false, e)
		return s, e, nil

	case litExpr:
		lbl := b.rl.add(Label{Type: token.STRING, Str: "'" + n.text + "'"})
		s, e := b.newState(), b.newState()
		b.addEdge(s, lbl, false, e)
		return s, e, nil

	case seqExpr:
		if len(n.items) == 0 {
			s := b.newState()
			return s, s, nil
		}
		start, cur, err := b.compile(n.items[0])
		if err != nil {
			return 0, 0, err
		}
		for _, it := range n.items[1:] {
			s, e, err := b.compile(it)
			if err != nil {
				return 0, 0, err
			}
			b.addEdge(cur, 0, true, s)
			cur = e
		}
		return start, cur, nil

	case altExpr:
		if len(n.items) == 0 {
			s := b.newState()
			return s, s, nil
		}
		s, e := b.newState(), b.newState()
		for _, it := range n.items {
			si, ei, err := b.compile(it)
			if err != nil {
				return 0, 0, err
			}
			b.addEdge(s, 0, true, si)
			b.addEdge(ei, 0, true, e)
		}
		return s, e, nil

	case starExpr:
		s, e := b.newState(), b.newState()
		si, ei, err := b.compile(n.item)
		if err != nil {
			return 0, 0, err
		}
		b.addEdge(s, 0, true, si)
		b.addEdge(ei, 0, true, si)
		b.addEdge(ei, 0, true, e)
		b.addEdge(s, 0, true, e)
		return s, e, nil

	case optExpr:
		s, e := b.newState(), b.newState()
		si, ei, err := b.compile(n.item)
		if err != nil {
			return 0, 0, err
		}
		b.addEdge(s, 0, true, si)
		b.addEdge(ei, 0, true, e)
		b.addEdge(s, 0, true, e)
		return s, e, nil

	default:
		return 0, 0, fmt.Errorf("grammar: unknown Expr node %T", node)
	}
}

// epsilonClosure returns the sorted set of NFA states reachable from any
// state in set via epsilon arcs alone.
func epsilonClosure(trans [][]nfaEdge, set []int) []int {
	seen := map[int]bool{}
	var stack []int
	for _, s := range set {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range trans[s] {
			if e.isEps && !seen[e.to] {
				seen[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func setKey(set []int) string {
	b := make([]byte, 0, len(set)*5)
	for i, s := range set {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, []byte(fmt.Sprintf("%d", s))...)
	}
	return string(b)
}

// compileRule runs Thompson construction then subset construction for a
// single rule's Expr, producing a deterministic DFA with no epsilon
// arcs, ready for label translation.
func compileRule(root Expr, rl *rawLabels) (DFA, error) {
	b := &nfaBuilder{rl: rl}
	nfaStart, nfaAccept, err := b.compile(root)
	if err != nil {
		return DFA{}, err
	}

	type dfaState struct {
		set []int
	}
	var states []dfaState
	keyToIdx := map[string]int{}

	startSet := epsilonClosure(b.trans, []int{nfaStart})
	startKey := setKey(startSet)
	states = append(states, dfaState{startSet})
	keyToIdx[startKey] = 0

	queue := []int{0}
	var resultStates []State

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		set := states[idx].set

		accept := false
		for _, s := range set {
			if s == nfaAccept {
				accept = true
				break
			}
		}

		byLabel := map[int][]int{}
		for _, s := range set {
			for _, e := range b.trans[s] {
				if !e.isEps {
					byLabel[e.label] = append(byLabel[e.label], e.to)
				}
			}
		}

		labelsHere := make([]int, 0, len(byLabel))
		for lbl := range byLabel {
			labelsHere = append(labelsHere, lbl)
		}
		sort.Ints(labelsHere)

		var arcs []Arc
		for _, lbl := range labelsHere {
			moved := epsilonClosure(b.trans, byLabel[lbl])
			k := setKey(moved)
			dest, ok := keyToIdx[k]
			if !ok {
				dest = len(states)
				keyToIdx[k] = dest
				states = append(states, dfaState{moved})
				queue = append(queue, dest)
			}
			arcs = append(arcs, Arc{Label: lbl, To: dest})
		}

		for len(resultStates) <= idx {
			resultStates = append(resultStates, State{})
		}
		resultStates[idx] = State{Arcs: arcs, Accept: accept}
	}

	return DFA{States: resultStates, Initial: 0}, nil
}
