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

// Package lexer turns a byte buffer plus a lexspec.Spec into a stream of
// tokens: it repeatedly asks the spec's match.Trie to match at the current
// cursor, advances by the reported bump, and silently skips tokens whose
// kind was declared whitespace. It tracks a human-facing Position alongside
// the byte cursor for diagnostics.
package lexer

import (
	"iter"

	"github.com/declex/declex/lexspec"
	"github.com/declex/declex/token"
)

// Tokenizer produces a sequence of tokens from a fixed input buffer
// according to a Spec. It is not safe for concurrent use; grammar and
// operator runtimes each own one Tokenizer (or a Mark of one) at a time.
type Tokenizer struct {
	spec *lexspec.Spec
	data []byte

	// offset/pos is the cursor immediately after the last Bump, i.e.
	// immediately before whatever Peek would return next.
	offset int
	pos    Position

	peeked     *token.Token
	peekedPos  Position // position of peeked's first byte
	peekedNext int      // offset immediately after peeked
	peekedPosN Position // position immediately after peeked

	// lastOffset/lastPos record the start of the most recently Bump-ed
	// token, so PositionOf can answer for it after Bump has cleared peeked.
	lastOffset int
	lastPos    Position
}

// NewTokenizer returns a Tokenizer reading data under spec, positioned
// before the first token.
func NewTokenizer(spec *lexspec.Spec, data []byte) *Tokenizer {
	return &Tokenizer{spec: spec, data: data, pos: Start}
}

// Mark is an opaque checkpoint of a Tokenizer's state, usable with Reset to
// backtrack (operator.Alt rewinds with it when its first alternative fails,
// even though ordinary grammar recursion only ever looks one token ahead).
type Mark struct {
	offset int
	pos    Position
}

// Save returns a Mark of t's current state.
func (t *Tokenizer) Save() Mark { return Mark{offset: t.offset, pos: t.pos} }

// Reset rewinds t to a previously saved Mark.
func (t *Tokenizer) Reset(m Mark) {
	t.offset = m.offset
	t.pos = m.pos
	t.peeked = nil
}

// scanOne matches and returns the token starting at offset/pos, along with
// the byte offset and position immediately after it. It does not mutate t.
func (t *Tokenizer) scanOne(offset int, pos Position) (tok token.Token, nextOffset int, nextPos Position) {
	res := t.spec.Trie().Match(t.data[offset:])
	switch {
	case res.IsEOF():
		return token.EOFToken(offset), offset, pos
	case res.IsUnmatched():
		// match.Trie.Match never reports Unmatched for non-empty input:
		// it always succeeds, errors, or reports EOF.
		panic("lexer: match.Trie.Match returned Unmatched for non-empty input")
	default:
		n := res.Bump()
		spelling := t.data[offset : offset+n]
		tok = token.Token{Kind: res.Kind(), Spelling: token.NewSpelling(spelling), Offset: offset}
		return tok, offset + n, pos.advancedBy(spelling)
	}
}

// fill populates t.peeked (and its associated positions) if not already
// populated, skipping over whitespace-kind tokens along the way.
func (t *Tokenizer) fill() {
	if t.peeked != nil {
		return
	}
	offset, pos := t.offset, t.pos
	for {
		tok, nextOffset, nextPos := t.scanOne(offset, pos)
		if tok.IsEOF() || !t.spec.IsWhitespace(tok.Kind) {
			t.peeked = &tok
			t.peekedPos = pos
			t.peekedNext = nextOffset
			t.peekedPosN = nextPos
			return
		}
		offset, pos = nextOffset, nextPos
	}
}

// Peek returns the next significant token without consuming it. Calling
// Peek repeatedly without an intervening Bump returns the same token.
func (t *Tokenizer) Peek() token.Token {
	t.fill()
	return *t.peeked
}

// PeekPosition returns the Position of the token Peek would return.
func (t *Tokenizer) PeekPosition() Position {
	t.fill()
	return t.peekedPos
}

// Bump consumes and returns the next significant token.
func (t *Tokenizer) Bump() token.Token {
	t.fill()
	tok := *t.peeked
	t.lastOffset, t.lastPos = tok.Offset, t.peekedPos
	t.offset, t.pos = t.peekedNext, t.peekedPosN
	t.peeked = nil
	return tok
}

// IsDone reports whether the tokenizer has reached end of input.
func (t *Tokenizer) IsDone() bool { return t.Peek().IsEOF() }

// PositionOf returns the human-facing Position of the start of a token just
// returned by Peek or Bump. offset must be the Offset field of such a
// token; PositionOf does not support arbitrary offsets into the input.
func (t *Tokenizer) PositionOf(offset int) Position {
	if offset == t.lastOffset {
		return t.lastPos
	}
	t.fill()
	if offset == t.peeked.Offset {
		return t.peekedPos
	}
	return t.lastPos
}

// AllTokens returns a lazy sequence of every significant token in the
// input, ending at (and including) the EOF token. Iterating it advances
// the Tokenizer exactly as repeated Bump calls would.
func (t *Tokenizer) AllTokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := t.Bump()
			if !yield(tok) {
				return
			}
			if tok.IsEOF() {
				return
			}
		}
	}
}
