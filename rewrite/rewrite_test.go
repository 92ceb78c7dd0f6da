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
	"testing"

	"github.com/popham/magicate/grammar"
	"github.com/popham/magicate/lexer"
	"github.com/popham/magicate/parser"
)

func mustGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.BuildDialectGrammar()
	if err != nil {
		t.Fatalf("BuildDialectGrammar: %v", err)
	}
	return g
}

func TestConcreteScenarios(t *testing.T) {
	g := mustGrammar(t)
	cases := []struct {
		in, want string
	}{
		{"x = a ⊕ b\n", "x = (a).___oplus___(b)\n"},
		{"y = a ⊗ b\n", "y = (a).___otimes___(b)\n"},
		{"z = a ⊕ b ⊕ c\n", "z = ((a).___oplus___(b)).___oplus___(c)\n"},
		{"z = a ⊕ b ⊗ c\n", "z = (a).___oplus___((b).___otimes___(c))\n"},
		{"a ⊕= b\n", "(a).___ioplus___(b)\n"},
		{"# ⊕\nx = 1\n", "# ⊕\nx = 1\n"},
	}
	for _, c := range cases {
		got, err := Magicate(g, []byte(c.in))
		if err != nil {
			t.Fatalf("%q: Magicate error: %v", c.in, err)
		}
		if string(got) != c.want {
			t.Fatalf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIdentityOnCleanInput(t *testing.T) {
	g := mustGrammar(t)
	cases := []string{
		"x = 1\n",
		"if a:\n    b = 2\nelse:\n    b = 3\n",
		"for i in xs:\n    f(i, 1)\n",
		"def f(a, b):\n    return a + b\n",
	}
	for _, src := range cases {
		got, err := Magicate(g, []byte(src))
		if err != nil {
			t.Fatalf("%q: Magicate error: %v", src, err)
		}
		if string(got) != src {
			t.Fatalf("%q: expected byte-identical output, got %q", src, got)
		}
	}
}

func TestLengthIdentity(t *testing.T) {
	g := mustGrammar(t)
	src := "z = a ⊕ b ⊗ c\n"
	l := lexer.New([]byte(src), true)
	tree, err := parser.New(g, []byte(src)).Parse(l)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	delta := PlanLength(tree)
	got, err := Magicate(g, []byte(src))
	if err != nil {
		t.Fatalf("Magicate: %v", err)
	}
	if len(got) != len(src)+delta {
		t.Fatalf("len(got)=%d, want %d (len(src)=%d, delta=%d)", len(got), len(src)+delta, len(src), delta)
	}
}
