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

// Package match implements the token-matching dispatcher: a character-
// indexed literal trie fused with rule-based matchers and an identifier/
// keyword disambiguator. Given a byte cursor it produces a Result telling
// the caller how many bytes to consume and what kind of token, if any, they
// form.
package match

import "github.com/declex/declex/token"

// Result is the outcome of matching at a single cursor position. Exactly
// one of the four states below holds: unmatched, error, success, or eof.
type Result struct {
	kind      token.Kind
	bump      int
	isEOF     bool
	isUnmatch bool
}

// Unmatched reports no forward progress is possible at the cursor.
func Unmatched() Result { return Result{isUnmatch: true} }

// ErrorResult reports n bytes should be skipped as an unrecognized run. n
// must be greater than zero.
func ErrorResult(n int) Result {
	if n <= 0 {
		panic("match: error bump must be > 0")
	}
	return Result{kind: token.Error, bump: n}
}

// SuccessResult reports n bytes form a token of the given kind. n must be
// greater than zero and kind must not be token.Error or token.EOF.
func SuccessResult(kind token.Kind, n int) Result {
	if n <= 0 {
		panic("match: success bump must be > 0")
	}
	if kind == token.Error || kind == token.EOF {
		panic("match: use ErrorResult or EOFResult for the error/eof kinds")
	}
	return Result{kind: kind, bump: n}
}

// EOFResult reports the cursor is at the end of input.
func EOFResult() Result { return Result{kind: token.EOF, isEOF: true} }

// IsUnmatched reports whether no forward progress was possible.
func (r Result) IsUnmatched() bool { return r.isUnmatch }

// IsEOF reports whether the cursor was at the end of input.
func (r Result) IsEOF() bool { return r.isEOF }

// IsError reports whether the result is an unrecognized, skipped run.
func (r Result) IsError() bool { return !r.isUnmatch && !r.isEOF && r.kind == token.Error }

// IsSuccess reports whether the result is a recognized token.
func (r Result) IsSuccess() bool {
	return !r.isUnmatch && !r.isEOF && r.kind != token.Error
}

// IsMatched reports whether the result is anything other than Unmatched
// (i.e. error, success, or eof all count as matched).
func (r Result) IsMatched() bool { return !r.isUnmatch }

// Kind returns the matched kind. Meaningful only when IsSuccess, IsError
// (always token.Error), or IsEOF (always token.EOF) is true.
func (r Result) Kind() token.Kind { return r.kind }

// Bump returns the number of bytes to advance the cursor by. Zero for
// Unmatched and EOF, always greater than zero for Error and Success.
func (r Result) Bump() int { return r.bump }
