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

import "github.com/declex/declex/token"

// Matcher tries to match at the beginning of data, returning a Result.
// Matchers are evaluated against the full remaining input, never a sub-
// slice starting mid-token, so a regexp.Regexp anchored with "^" is a
// legitimate Matcher.
type Matcher func(data []byte) Result

// LengthMatcher adapts a plain "how many bytes matched" function, as used
// by most rule tokens (integer literals, float literals, identifiers), into
// a Matcher that reports Success(kind, n) or Unmatched.
func LengthMatcher(kind token.Kind, fn func(data []byte) int) Matcher {
	return func(data []byte) Result {
		n := fn(data)
		if n <= 0 {
			return Unmatched()
		}
		return SuccessResult(kind, n)
	}
}

// Rule is a rule token: a named matcher plus the set of literal spellings
// it conflicts with (can match the same leading bytes as). Conflicting
// literals are where the trie re-checks this rule after a literal match, per
// the matching algorithm in match.Trie.Match.
type Rule struct {
	Name      string
	Conflicts []string
	Match     Matcher
}

// NewRule builds a simple rule token of a single fixed kind.
func NewRule(name string, kind token.Kind, fn func(data []byte) int, conflicts ...string) Rule {
	return Rule{Name: name, Conflicts: conflicts, Match: LengthMatcher(kind, fn)}
}
