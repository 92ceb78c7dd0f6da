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

package parser

import (
	"fmt"

	"github.com/popham/magicate/token"
)

// SyntaxError reports where the incoming token matched no arc of the
// current DFA state.
type SyntaxError struct {
	Line     int
	Col      int
	Got      token.Type
	GotText  string
	Expected []token.Type // the terminal types that would have matched here
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: syntax error: unexpected %v %q (expected one of %v)",
		e.Line, e.Col, e.Got, e.GotText, e.Expected)
}
