// Copyright 2026 The Declex Authors.
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
	"fmt"
	"unicode/utf8"
)

// Position is a human-facing line/column in the source, 1-based in both
// dimensions. It is derived incrementally as the tokenizer consumes bytes,
// never recomputed from scratch, so reporting a diagnostic costs nothing
// beyond the Position the Tokenizer already holds for the token.
type Position struct {
	Line, Column int
}

// Start is the position of the first byte of input.
var Start = Position{Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advancedBy returns the position immediately after consuming spelling,
// which must begin at p. Newlines increment the line and reset the column;
// other runes advance the column. Walks spelling rune by rune rather than
// locating the last newline up front, since token spellings are short
// enough that a single pass costs nothing extra.
func (p Position) advancedBy(spelling []byte) Position {
	for len(spelling) > 0 {
		r, size := utf8.DecodeRune(spelling)
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		spelling = spelling[size:]
	}
	return p
}
