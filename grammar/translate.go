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
	"unicode"
	"unicode/utf8"

	"github.com/popham/magicate/lexer"
	"github.com/popham/magicate/token"
)

// TranslateLabels resolves every raw NAME/STRING label produced by
// Compile to a concrete terminal or nonterminal token.Type, matching
// CPython's Parser/grammar.c translatelabels/translabel: a NAME
// label either names another rule in nameToType (a nonterminal) or a
// token class such as "NAME"/"NUMBER" (resolved via token.Lookup); a
// STRING label is either a keyword (its text starts with a letter or
// underscore, so it becomes a NAME label carrying the keyword text) or
// an operator literal (resolved via lexer.ClassifyLiteral).
//
// It must run exactly once per Grammar, after Compile and before
// ComputeFirstSets.
func TranslateLabels(g *Grammar, nameToType map[string]token.Type) error {
	for i := 1; i < len(g.Labels); i++ { // index 0 is the reserved EMPTY label
		lb := &g.Labels[i]
		switch lb.Type {
		case token.NAME:
			if nt, ok := nameToType[lb.Str]; ok {
				lb.Type = nt
				continue
			}
			tt, ok := token.Lookup(lb.Str)
			if !ok {
				return fmt.Errorf("grammar: label %q names neither a rule nor a token class", lb.Str)
			}
			lb.Type = tt
			// A token-class label (e.g. "NAME", "NUMBER") matches any
			// token of that type; clear Str so it doesn't get confused
			// with a keyword label, which carries the exact text a NAME
			// token's lexeme must match (see the STRING case below).
			lb.Str = ""

		case token.STRING:
			text := lb.Str
			if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
				return fmt.Errorf("grammar: malformed string label %q", text)
			}
			inner := text[1 : len(text)-1]
			r, _ := utf8.DecodeRuneInString(inner)
			if r == utf8.RuneError || unicode.IsLetter(r) || r == '_' {
				lb.Type = token.NAME
				lb.Str = inner
				continue
			}
			lb.Type = lexer.ClassifyLiteral(inner)
			lb.Str = ""

		default:
			return fmt.Errorf("grammar: label %d already translated or malformed (type %v)", i, lb.Type)
		}
	}
	return nil
}

// NameTypes returns a name->type map covering every DFA in g, for use as
// TranslateLabels' nameToType argument.
func NameTypes(g *Grammar) map[string]token.Type {
	m := make(map[string]token.Type, len(g.DFAs))
	for _, d := range g.DFAs {
		m[d.Name] = d.Type
	}
	return m
}
