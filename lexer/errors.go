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

import "strconv"

// Code enumerates the tokenizer/parser error taxonomy.
type Code int

const (
	EOK Code = iota
	EEOF
	EEOLS
	EEOFS
	EToken
	ETabSpace
	ETooDeep
	EDedent
	ELineCont
	EDecode
	ESyntax
	ENoMem
)

func (c Code) String() string {
	switch c {
	case EOK:
		return "E_OK"
	case EEOF:
		return "E_EOF"
	case EEOLS:
		return "E_EOLS"
	case EEOFS:
		return "E_EOFS"
	case EToken:
		return "E_TOKEN"
	case ETabSpace:
		return "E_TABSPACE"
	case ETooDeep:
		return "E_TOODEEP"
	case EDedent:
		return "E_DEDENT"
	case ELineCont:
		return "E_LINECONT"
	case EDecode:
		return "E_DECODE"
	case ESyntax:
		return "E_SYNTAX"
	case ENoMem:
		return "E_NOMEM"
	default:
		return "E_UNKNOWN"
	}
}

// Error reports a lexical failure at a specific source location.
type Error struct {
	Code Code
	Line int
	Col  int
	Text string
}

func (e *Error) Error() string {
	return e.Code.String() + ": line " + strconv.Itoa(e.Line) + ", col " + strconv.Itoa(e.Col) + ": " + e.Text
}
