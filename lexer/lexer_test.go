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

package lexer

import (
	"testing"

	"github.com/popham/magicate/token"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := New([]byte(src), true)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == token.ENDMARKER {
			return toks
		}
	}
}

func typesOf(toks []Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestExtendedOperators(t *testing.T) {
	toks := allTokens(t, "a ⊕ b\n")
	got := typesOf(toks)
	want := []token.Type{token.NAME, token.CIRCLEDPLUS, token.NAME, token.NEWLINE, token.ENDMARKER}
	if !equalTypes(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompoundExtendedOperator(t *testing.T) {
	toks := allTokens(t, "a ⊕= b\n")
	got := typesOf(toks)
	want := []token.Type{token.NAME, token.CIRCLEDPLUSEQUAL, token.NAME, token.NEWLINE, token.ENDMARKER}
	if !equalTypes(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCircledTimes(t *testing.T) {
	toks := allTokens(t, "y = a ⊗ b\n")
	got := typesOf(toks)
	want := []token.Type{
		token.NAME, token.EQUAL, token.NAME, token.CIRCLEDTIMES, token.NAME,
		token.NEWLINE, token.ENDMARKER,
	}
	if !equalTypes(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIndentDedentBalance(t *testing.T) {
	src := "if a:\n    b\n    if c:\n        d\n    e\nf\n"
	toks := allTokens(t, src)
	indents, dedents := 0, 0
	for _, tk := range toks {
		switch tk.Type {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced INDENT/DEDENT: %d indents, %d dedents", indents, dedents)
	}
	if indents != 2 {
		t.Fatalf("expected 2 indents, got %d", indents)
	}
}

func TestNewlineSuppressedInsideParens(t *testing.T) {
	src := "f(a,\nb)\n"
	toks := allTokens(t, src)
	newlines := 0
	for _, tk := range toks {
		if tk.Type == token.NEWLINE {
			newlines++
		}
	}
	if newlines != 1 {
		t.Fatalf("expected exactly 1 NEWLINE (trailing), got %d", newlines)
	}
}

func TestTripleQuotedStringSingleToken(t *testing.T) {
	src := "x = \"\"\"a\nb\nc\"\"\"\n"
	toks := allTokens(t, src)
	strCount := 0
	for _, tk := range toks {
		if tk.Type == token.STRING {
			strCount++
		}
	}
	if strCount != 1 {
		t.Fatalf("expected exactly 1 STRING token, got %d", strCount)
	}
}

func TestCommentPreservesNoTokens(t *testing.T) {
	src := "# ⊕\nx = 1\n"
	toks := allTokens(t, src)
	for _, tk := range toks {
		if tk.Type.IsExtraOp() {
			t.Fatalf("comment body must not yield an extended-operator token: %v", tk.Type)
		}
	}
}

func TestNumberForms(t *testing.T) {
	cases := []string{"0", "0x1F", "0o17", "0b101", "017", "1.5", "1.", ".5", "1e10", "1e+10", "1e-10", "1j", "10L"}
	for _, c := range cases {
		l := New([]byte(c+"\n"), true)
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c, err)
		}
		if tok.Type != token.NUMBER {
			t.Fatalf("%q: got type %v, want NUMBER", c, tok.Type)
		}
		if string(tok.Text([]byte(c+"\n"))) != c {
			t.Fatalf("%q: token span = %q", c, tok.Text([]byte(c+"\n")))
		}
	}
}

func TestMalformedNumberIsError(t *testing.T) {
	cases := []string{"0x\n", "0o8\n", "1e\n"}
	for _, c := range cases {
		l := New([]byte(c), true)
		var lastType token.Type
		var lastErr error
		for {
			tok, err := l.Next()
			lastType = tok.Type
			lastErr = err
			if err != nil || tok.Type == token.ENDMARKER {
				break
			}
		}
		if c == "1e\n" {
			// "1e" with no exponent digits rewinds cleanly to a NUMBER "1".
			if lastErr != nil {
				t.Fatalf("%q: expected clean NUMBER rewind, got error %v", c, lastErr)
			}
			continue
		}
		if lastErr == nil || lastType != token.ERRORTOKEN {
			t.Fatalf("%q: expected ERRORTOKEN, got %v (err=%v)", c, lastType, lastErr)
		}
	}
}

func equalTypes(a, b []token.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
