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

// Expr is a node in the small EBNF-like language used to describe one
// DFA's body: sequence, alternation, star, optional, and references to
// either another nonterminal or a terminal by name/literal. It mirrors
// the shape of a pgen grammar rule's RHS closely enough that Compile can
// turn it into the same State/Arc shape a real precompiled grammar has.
type Expr interface{ exprNode() }

type seqExpr struct{ items []Expr }
type altExpr struct{ items []Expr }
type starExpr struct{ item Expr }
type optExpr struct{ item Expr }
type refExpr struct{ name string } // nonterminal, or a token class such as "NAME"
type litExpr struct{ text string } // punctuation or keyword, quoted when compiled

func (seqExpr) exprNode() {}
func (altExpr) exprNode() {}
func (starExpr) exprNode() {}
func (optExpr) exprNode() {}
func (refExpr) exprNode() {}
func (litExpr) exprNode() {}

// Seq matches each item in order.
func Seq(items ...Expr) Expr { return seqExpr{items} }

// Alt matches exactly one of its items.
func Alt(items ...Expr) Expr { return altExpr{items} }

// Star matches item zero or more times.
func Star(item Expr) Expr { return starExpr{item} }

// Opt matches item zero or one time.
func Opt(item Expr) Expr { return optExpr{item} }

// Plus matches item one or more times.
func Plus(item Expr) Expr { return Seq(item, Star(item)) }

// Ref refers to another rule defined in the same RuleSet, or, if no
// rule by that name exists, a terminal token class (e.g. "NAME",
// "NUMBER", "STRING", "NEWLINE", "INDENT", "DEDENT", "ENDMARKER").
func Ref(name string) Expr { return refExpr{name} }

// Lit matches a literal operator or keyword, e.g. Lit("+") or Lit("if").
// TranslateLabels tells them apart by inspecting the first character
// after the opening quote.
func Lit(text string) Expr { return litExpr{text} }
