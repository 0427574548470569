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

// Package grammar implements the recursive-descent, single-token-lookahead
// parser runtime: rule productions assembled from token/silent/eof atoms,
// production references, sequences, token choices, optionals, and guarded
// production choices, plus plain and bracketed list productions. Every
// successful parse is reported to a caller-supplied Visitor; every failure
// reports a Diagnostic to the Visitor before propagating as Unmatched.
package grammar

// Result is the outcome of parsing a production or sub-expression: either
// Unmatched (no value, propagates silently) or a Success carrying a value
// produced by a Visitor callback. There are no partial successes.
type Result struct {
	value any
	ok    bool
}

// Unmatched reports that parsing failed to produce a value.
func Unmatched() Result { return Result{} }

// Success reports that parsing produced value.
func Success(value any) Result { return Result{value: value, ok: true} }

// IsSuccess reports whether r carries a value.
func (r Result) IsSuccess() bool { return r.ok }

// Value returns the carried value. Meaningful only when IsSuccess is true.
func (r Result) Value() any { return r.value }
