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

import "unicode/utf8"

// decodeRune reads one UTF-8-encoded code point from buf starting at
// pos, returning the index just past it and the scalar value. On an
// invalid lead byte the returned index equals pos (zero progress); the
// caller uses that to flag decoding as erred, matching the reference
// decode()'s contract.
func decodeRune(buf []byte, pos int) (next int, r rune) {
	if pos >= len(buf) {
		return pos, utf8.RuneError
	}
	r, size := utf8.DecodeRune(buf[pos:])
	if r == utf8.RuneError && size <= 1 {
		return pos, utf8.RuneError
	}
	return pos + size, r
}
