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
	"github.com/popham/magicate/grammar"
	"github.com/popham/magicate/lexer"
	"github.com/popham/magicate/parser"
)

// Magicate runs the full pipeline over src: lex, parse against g, plan
// the output length, and emit the rewritten bytes. It halts and returns
// the first tokenizer or parser error, discarding any partial tree.
func Magicate(g *grammar.Grammar, src []byte) ([]byte, error) {
	l := lexer.New(src, true)
	tree, err := parser.New(g, src).Parse(l)
	if err != nil {
		return nil, err
	}
	return Emit(g, src, tree)
}
