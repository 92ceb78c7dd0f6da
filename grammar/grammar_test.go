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
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/popham/magicate/token"
)

func TestCompileAssignsNonterminalIdsSequentially(t *testing.T) {
	g, err := Compile(RuleSet{
		"a": Ref("NAME"),
		"b": Ref("a"),
	}, "b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for i, d := range g.DFAs {
		if d.Type != token.NTOffset+token.Type(i) {
			t.Fatalf("DFA %d: Type = %v, want %v", i, d.Type, token.NTOffset+token.Type(i))
		}
		if g.FindDFA(d.Type) != &g.DFAs[i] {
			t.Fatalf("FindDFA(%v) did not return DFA %d", d.Type, i)
		}
	}
}

func TestCompileUnknownStart(t *testing.T) {
	if _, err := Compile(RuleSet{"a": Ref("NAME")}, "nope"); err == nil {
		t.Fatal("expected error for unknown start rule")
	}
}

func TestTranslateResolvesKeywordsAndOperators(t *testing.T) {
	rules := RuleSet{
		"s": Seq(Lit("if"), Ref("NAME"), Lit(":"), Lit("+")),
	}
	g, err := Compile(rules, "s")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := TranslateLabels(g, NameTypes(g)); err != nil {
		t.Fatalf("TranslateLabels: %v", err)
	}
	var sawKeyword, sawName, sawColon, sawPlus bool
	for _, lb := range g.Labels[1:] {
		switch {
		case lb.Type == token.NAME && lb.Str == "if":
			sawKeyword = true
		case lb.Type == token.NAME && lb.Str == "":
			sawName = true
		case lb.Type == token.COLON:
			sawColon = true
		case lb.Type == token.PLUS:
			sawPlus = true
		}
	}
	if !sawKeyword || !sawName || !sawColon || !sawPlus {
		t.Fatalf("labels not fully resolved: %+v", g.Labels)
	}
}

// labelSummary is a pretty-printable projection of a Label: Label
// itself carries a token.Type whose String() changes meaning once
// N_TOKENS is exceeded (nonterminal ids), so tests compare this
// instead of the raw struct.
type labelSummary struct {
	TypeName string
	Str      string
}

func summarizeLabels(labels []Label) []labelSummary {
	out := make([]labelSummary, len(labels))
	for i, lb := range labels {
		name := "<nonterminal>"
		if lb.Type.IsTerminal() {
			name = lb.Type.String()
		}
		out[i] = labelSummary{TypeName: name, Str: lb.Str}
	}
	return out
}

func TestTranslatedLabelShape(t *testing.T) {
	rules := RuleSet{"s": Seq(Lit("if"), Ref("NAME"), Lit(":"))}
	g, err := Compile(rules, "s")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := TranslateLabels(g, NameTypes(g)); err != nil {
		t.Fatalf("TranslateLabels: %v", err)
	}
	want := []labelSummary{
		{TypeName: "<?TOKEN?>", Str: ""}, // reserved EMPTY label at index 0
		{TypeName: "NAME", Str: "if"},
		{TypeName: "NAME", Str: ""},
		{TypeName: "COLON", Str: ""},
	}
	got := summarizeLabels(g.Labels)
	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("translated labels differ (-want +got):\n%s", diff)
	}
}

func TestDialectBuilds(t *testing.T) {
	g, err := BuildDialectGrammar()
	if err != nil {
		t.Fatalf("BuildDialectGrammar: %v", err)
	}
	if g.FindDFA(g.Start) == nil {
		t.Fatal("start DFA missing")
	}
	fi := g.FindDFA(g.Start)
	if len(fi.First) == 0 {
		t.Fatal("file_input has empty first set")
	}
}

// TestExtraOpArcPlacement verifies that the only DFAs with an arc
// labeled by one of the four extended operator types are arith_expr
// (CIRCLEDPLUS), term (CIRCLEDTIMES), and augassign (CIRCLEDPLUSEQUAL,
// CIRCLEDTIMESEQUAL): the first two carry their operator as one
// alternative among the ordinary operators at that precedence level,
// while augassign is a dedicated nonterminal one level below expr_stmt
// whose sole child is the operator. Since token.Type.IsExtraOp()
// classifies a token by its own type regardless of where it sits in the
// tree, package rewrite's emitter and length planner both look for an
// extra-op token either as a node's own type or as the sole child of a
// wrapping nonterminal (see extraOpSite in rewrite/emit.go), so a DFA
// outside this set would need a matching change there too.
func TestExtraOpArcPlacement(t *testing.T) {
	g, err := BuildDialectGrammar()
	if err != nil {
		t.Fatalf("BuildDialectGrammar: %v", err)
	}
	for _, d := range g.DFAs {
		hasExtra := false
		for _, st := range d.States {
			for _, arc := range st.Arcs {
				if g.Labels[arc.Label].Type.IsExtraOp() {
					hasExtra = true
				}
			}
		}
		if !hasExtra {
			continue
		}
		if d.Name != "arith_expr" && d.Name != "term" && d.Name != "augassign" {
			t.Fatalf("unexpected DFA with extended operator arc: %s", d.Name)
		}
	}
}
