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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declex/declex/lexspec"
	"github.com/declex/declex/token"
)

func digits(data []byte) int {
	n := 0
	for n < len(data) && data[n] >= '0' && data[n] <= '9' {
		n++
	}
	return n
}

func letters(data []byte) int {
	n := 0
	for n < len(data) {
		c := data[n]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (n > 0 && c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	return n
}

func whitespace(data []byte) int {
	n := 0
	for n < len(data) && (data[n] == ' ' || data[n] == '\t' || data[n] == '\n') {
		n++
	}
	return n
}

func buildArithmeticSpec(t *testing.T) (*lexspec.Spec, map[string]token.Kind) {
	t.Helper()
	b := lexspec.NewBuilder()
	kinds := map[string]token.Kind{
		"+":    b.Literal("plus", "+"),
		"*":    b.Literal("star", "*"),
		"(":    b.Literal("lparen", "("),
		")":    b.Literal("rparen", ")"),
		"num":  b.Rule("number", digits),
		"id":   b.Identifier("identifier", letters),
		"ws":   b.Rule("whitespace", whitespace),
		"true": b.Keyword("identifier", "true", "true"),
	}
	b.Whitespace(kinds["ws"])
	spec, err := b.Build()
	require.NoError(t, err)
	return spec, kinds
}

func TestTokenizerSkipsWhitespaceAndReportsEOF(t *testing.T) {
	spec, kinds := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("12 + x"))

	tok := tz.Bump()
	assert.Equal(t, kinds["num"], tok.Kind)
	assert.Equal(t, "12", tok.Spelling.String())

	tok = tz.Bump()
	assert.Equal(t, kinds["+"], tok.Kind)

	tok = tz.Bump()
	assert.Equal(t, kinds["id"], tok.Kind)
	assert.Equal(t, "x", tok.Spelling.String())

	tok = tz.Bump()
	assert.True(t, tok.IsEOF())
	assert.True(t, tz.IsDone())
}

func TestTokenizerPeekIsIdempotentUntilBump(t *testing.T) {
	spec, kinds := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("42"))

	first := tz.Peek()
	second := tz.Peek()
	assert.Equal(t, first, second)
	assert.Equal(t, kinds["num"], first.Kind)

	bumped := tz.Bump()
	assert.Equal(t, first, bumped)
	assert.True(t, tz.IsDone())
}

func TestTokenizerKeywordWinsOverIdentifier(t *testing.T) {
	spec, kinds := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("true truer"))

	tok := tz.Bump()
	assert.Equal(t, kinds["true"], tok.Kind)

	tok = tz.Bump()
	assert.Equal(t, kinds["id"], tok.Kind, "truer is a strict-prefix superset of a keyword and must lex as an identifier")
	assert.Equal(t, "truer", tok.Spelling.String())
}

func TestTokenizerSaveAndReset(t *testing.T) {
	spec, kinds := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("1 + 2"))

	mark := tz.Save()
	first := tz.Bump()
	assert.Equal(t, kinds["num"], first.Kind)

	tz.Reset(mark)
	replay := tz.Bump()
	assert.Equal(t, first, replay)
}

func TestTokenizerPositionTracksLinesAndColumns(t *testing.T) {
	spec, _ := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("1\n22 +"))

	_ = tz.Bump() // "1"
	_ = tz.Bump() // "22"
	plus := tz.Bump()
	pos := tz.PositionOf(plus.Offset)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 4, pos.Column)
}

func TestTokenizerAllTokensYieldsEOFLast(t *testing.T) {
	spec, _ := buildArithmeticSpec(t)
	tz := NewTokenizer(spec, []byte("1+2"))

	var kinds []token.Kind
	for tok := range tz.AllTokens() {
		kinds = append(kinds, tok.Kind)
	}
	require.NotEmpty(t, kinds)
	assert.True(t, kinds[len(kinds)-1] == token.EOF)
}
