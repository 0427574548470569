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

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declex/declex/token"
)

var (
	kindPlus     = token.NewKind(1, "+")
	kindPlusPlus = token.NewKind(2, "++")
	kindMinus    = token.NewKind(3, "-")
	kindArrow    = token.NewKind(4, "->")
	kindNumber   = token.NewKind(5, "number")
	kindIf       = token.NewKind(6, "if")
	kindIdent    = token.NewKind(7, "identifier")
)

func digitRunMatcher(data []byte) int {
	n := 0
	for n < len(data) && data[n] >= '0' && data[n] <= '9' {
		n++
	}
	return n
}

func TestTrieLongestLiteralMatch(t *testing.T) {
	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindPlus, "+"))
	require.NoError(t, tr.InsertLiteral(kindPlusPlus, "++"))
	require.NoError(t, tr.InsertLiteral(kindMinus, "-"))
	require.NoError(t, tr.InsertLiteral(kindArrow, "->"))

	cases := []struct {
		name string
		in   string
		kind token.Kind
		bump int
	}{
		{"single plus before other char", "+x", kindPlus, 1},
		{"double plus longest match", "++x", kindPlusPlus, 2},
		{"single plus at eof", "+", kindPlus, 1},
		{"arrow beats minus", "->x", kindArrow, 2},
		{"minus alone", "-x", kindMinus, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := tr.Match([]byte(c.in))
			require.True(t, res.IsSuccess())
			assert.Equal(t, c.kind, res.Kind())
			assert.Equal(t, c.bump, res.Bump())
		})
	}
}

func TestTrieEmptyInputIsEOF(t *testing.T) {
	tr := NewTrie()
	res := tr.Match(nil)
	assert.True(t, res.IsEOF())
}

func TestTrieUnrecognizedByteIsError(t *testing.T) {
	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindPlus, "+"))
	res := tr.Match([]byte("$"))
	require.True(t, res.IsError())
	assert.Equal(t, 1, res.Bump())
}

func TestTrieDuplicateLiteralIsConstructionError(t *testing.T) {
	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindPlus, "+"))
	err := tr.InsertLiteral(kindMinus, "+")
	assert.Error(t, err)
}

func TestTrieRootRuleUsedWhenNoLiteralPrefixMatches(t *testing.T) {
	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindPlus, "+"))
	tr.InsertRule(NewRule("number", kindNumber, digitRunMatcher))

	res := tr.Match([]byte("123+4"))
	require.True(t, res.IsSuccess())
	assert.Equal(t, kindNumber, res.Kind())
	assert.Equal(t, 3, res.Bump())
}

func TestTrieRuleTieBreakFavorsRuleOverLiteral(t *testing.T) {
	// ".5" can be read either as a (hypothetical) "." literal followed by a
	// number rule, or matched whole by a float rule. Model a case where a
	// rule conflicts with a literal and matches exactly as many bytes: the
	// rule should win on the tie.
	kindDot := token.NewKind(8, ".")
	kindFloat := token.NewKind(9, "float")

	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindDot, "."))
	floatRule := NewRule("float", kindFloat, func(data []byte) int {
		if len(data) >= 1 && data[0] == '.' {
			return 1
		}
		return 0
	}, ".")
	tr.InsertRule(floatRule)

	res := tr.Match([]byte(".x"))
	require.True(t, res.IsSuccess())
	assert.Equal(t, kindFloat, res.Kind(), "a conflicting rule must win a length tie against the literal it conflicts with")
}

func TestTrieShorterConflictingRuleLosesToLongerLiteral(t *testing.T) {
	// A conflicting rule that matches fewer bytes than the literal's
	// terminal must lose, even though it fired at all.
	kindArrowLit := token.NewKind(10, "->")
	tr := NewTrie()
	require.NoError(t, tr.InsertLiteral(kindArrowLit, "->"))
	shortRule := NewRule("dash", kindMinus, func(data []byte) int {
		if len(data) >= 1 && data[0] == '-' {
			return 1
		}
		return 0
	}, "->")
	tr.InsertRule(shortRule)

	res := tr.Match([]byte("->x"))
	require.True(t, res.IsSuccess())
	assert.Equal(t, kindArrowLit, res.Kind())
	assert.Equal(t, 2, res.Bump())
}

func TestIdentifierRuleKeywordWinsOnExactLength(t *testing.T) {
	idMatch := func(data []byte) int {
		n := 0
		for n < len(data) {
			c := data[n]
			if c >= 'a' && c <= 'z' {
				n++
				continue
			}
			break
		}
		return n
	}
	rule := IdentifierRule("identifier", kindIdent, idMatch, map[string]token.Kind{
		"if": kindIf,
	})

	t.Run("exact keyword spelling", func(t *testing.T) {
		res := rule.Match([]byte("if "))
		require.True(t, res.IsSuccess())
		assert.Equal(t, kindIf, res.Kind())
		assert.Equal(t, 2, res.Bump())
	})

	t.Run("keyword as strict prefix loses to identifier", func(t *testing.T) {
		res := rule.Match([]byte("iffy "))
		require.True(t, res.IsSuccess())
		assert.Equal(t, kindIdent, res.Kind())
		assert.Equal(t, 4, res.Bump())
	})

	t.Run("no identifier match at all", func(t *testing.T) {
		res := rule.Match([]byte("123"))
		assert.True(t, res.IsUnmatched())
	})
}
