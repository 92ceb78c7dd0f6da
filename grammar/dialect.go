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

// Dialect returns the RuleSet for the concrete statement/expression
// grammar this module parses: a compact, Python-2-tokenizer-shaped
// language extended with the two circled operators, plus the compound
// statements a real source file needs (if/while/for/def). It is not
// meant to be a complete language grammar; it is authored directly here
// rather than generated, since no grammar-generator tool is in scope.
func Dialect() RuleSet {
	return RuleSet{
		"file_input": Seq(
			Star(Alt(Ref("NEWLINE"), Ref("stmt"))),
			Ref("ENDMARKER"),
		),

		"stmt": Alt(Ref("simple_stmt"), Ref("compound_stmt")),

		"simple_stmt": Seq(
			Ref("small_stmt"),
			Star(Seq(Lit(";"), Ref("small_stmt"))),
			Opt(Lit(";")),
			Ref("NEWLINE"),
		),

		"small_stmt": Alt(Ref("expr_stmt"), Ref("pass_stmt"), Ref("flow_stmt")),

		"pass_stmt": Lit("pass"),

		"flow_stmt": Alt(Lit("break"), Lit("continue"), Ref("return_stmt")),

		"return_stmt": Seq(Lit("return"), Opt(Ref("testlist"))),

		"expr_stmt": Seq(
			Ref("testlist"),
			Opt(Alt(
				Seq(Lit("="), Ref("testlist")),
				Seq(Ref("augassign"), Ref("testlist")),
			)),
		),

		"augassign": Alt(
			Lit("+="), Lit("-="), Lit("*="), Lit("/="), Lit("%="),
			Lit("&="), Lit("|="), Lit("^="), Lit("<<="), Lit(">>="),
			Lit("**="), Lit("//="),
			Lit("⊕="), Lit("⊗="),
		),

		"compound_stmt": Alt(
			Ref("if_stmt"), Ref("while_stmt"), Ref("for_stmt"), Ref("funcdef"),
		),

		"if_stmt": Seq(
			Lit("if"), Ref("test"), Lit(":"), Ref("suite"),
			Star(Seq(Lit("elif"), Ref("test"), Lit(":"), Ref("suite"))),
			Opt(Seq(Lit("else"), Lit(":"), Ref("suite"))),
		),

		"while_stmt": Seq(
			Lit("while"), Ref("test"), Lit(":"), Ref("suite"),
			Opt(Seq(Lit("else"), Lit(":"), Ref("suite"))),
		),

		"for_stmt": Seq(
			Lit("for"), Ref("exprlist"), Lit("in"), Ref("testlist"), Lit(":"), Ref("suite"),
			Opt(Seq(Lit("else"), Lit(":"), Ref("suite"))),
		),

		"funcdef": Seq(
			Lit("def"), Ref("NAME"), Lit("("), Opt(Ref("varargslist")), Lit(")"), Lit(":"), Ref("suite"),
		),

		"varargslist": Seq(Ref("NAME"), Star(Seq(Lit(","), Ref("NAME")))),

		"suite": Alt(
			Ref("simple_stmt"),
			Seq(Ref("NEWLINE"), Ref("INDENT"), Plus(Ref("stmt")), Ref("DEDENT")),
		),

		"testlist": Seq(Ref("test"), Star(Seq(Lit(","), Ref("test"))), Opt(Lit(","))),
		"exprlist":  Seq(Ref("expr"), Star(Seq(Lit(","), Ref("expr"))), Opt(Lit(","))),

		"test": Ref("or_test"),

		"or_test":  Seq(Ref("and_test"), Star(Seq(Lit("or"), Ref("and_test")))),
		"and_test": Seq(Ref("not_test"), Star(Seq(Lit("and"), Ref("not_test")))),
		"not_test": Alt(Seq(Lit("not"), Ref("not_test")), Ref("comparison")),

		"comparison": Seq(Ref("expr"), Star(Seq(Ref("comp_op"), Ref("expr")))),
		"comp_op": Alt(
			Lit("<"), Lit(">"), Lit("=="), Lit(">="), Lit("<="), Lit("<>"), Lit("!="),
			Lit("in"),
			Seq(Lit("not"), Lit("in")),
			Lit("is"),
			Seq(Lit("is"), Lit("not")),
		),

		"expr":       Seq(Ref("xor_expr"), Star(Seq(Lit("|"), Ref("xor_expr")))),
		"xor_expr":   Seq(Ref("and_expr"), Star(Seq(Lit("^"), Ref("and_expr")))),
		"and_expr":   Seq(Ref("shift_expr"), Star(Seq(Lit("&"), Ref("shift_expr")))),
		"shift_expr": Seq(Ref("arith_expr"), Star(Seq(Alt(Lit("<<"), Lit(">>")), Ref("arith_expr")))),

		// arith_expr and term are where the two circled operators live:
		// CIRCLEDPLUS sits beside +/- at arith_expr, CIRCLEDTIMES beside
		// */%// at term, giving ⊕/⊗ additive and multiplicative
		// precedence respectively.
		"arith_expr": Seq(Ref("term"), Star(Seq(Alt(Lit("+"), Lit("-"), Lit("⊕")), Ref("term")))),
		"term":       Seq(Ref("factor"), Star(Seq(Alt(Lit("*"), Lit("/"), Lit("%"), Lit("//"), Lit("⊗")), Ref("factor")))),

		"factor": Alt(Seq(Alt(Lit("+"), Lit("-"), Lit("~")), Ref("factor")), Ref("power")),
		"power":  Seq(Ref("atom"), Star(Ref("trailer")), Opt(Seq(Lit("**"), Ref("factor")))),

		"atom": Alt(
			Seq(Lit("("), Opt(Ref("testlist")), Lit(")")),
			Seq(Lit("["), Opt(Ref("testlist")), Lit("]")),
			Ref("NAME"),
			Ref("NUMBER"),
			Plus(Ref("STRING")),
		),

		"trailer": Alt(
			Seq(Lit("("), Opt(Ref("arglist")), Lit(")")),
			Seq(Lit("["), Ref("test"), Lit("]")),
			Seq(Lit("."), Ref("NAME")),
		),

		"arglist":  Seq(Ref("argument"), Star(Seq(Lit(","), Ref("argument"))), Opt(Lit(","))),
		"argument": Ref("test"),
	}
}

// BuildDialectGrammar runs the full build pipeline (Compile, then
// TranslateLabels, then ComputeFirstSets) over Dialect and returns the
// finished, parser-ready Grammar rooted at file_input.
func BuildDialectGrammar() (*Grammar, error) {
	g, err := Compile(Dialect(), "file_input")
	if err != nil {
		return nil, err
	}
	if err := TranslateLabels(g, NameTypes(g)); err != nil {
		return nil, err
	}
	if err := ComputeFirstSets(g); err != nil {
		return nil, err
	}
	return g, nil
}
