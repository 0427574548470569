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

// Package operator implements the Pratt-style operator-precedence engine: a
// chain of typed combinators (atom, parenthesized, prefix/postfix/binary
// operator levels, the expr boundary, and the A/B hierarchy alternative)
// assembled bottom-up from the tightest-binding level outward, mirroring
// original_source/include/foonathan/lex/operator_production.hpp's nested
// detail::atom / detail::prefix_op_single / detail::binary_op_single /
// detail::expression template chain as a chain of Go interface values
// instead of template instantiations.
package operator

// Result is a minimal success/failure carrier, mirroring grammar.Result: a
// combinator either produces a value (the folded operand/expression) or
// fails having already reported a Diagnostic.
type Result struct {
	value any
	ok    bool
}

// Unmatched reports failure; the caller has already reported a Diagnostic.
func Unmatched() Result { return Result{} }

// Success wraps a combinator's folded value.
func Success(value any) Result { return Result{value: value, ok: true} }

// IsSuccess reports whether the parse succeeded.
func (r Result) IsSuccess() bool { return r.ok }

// Value returns the folded value; only meaningful when IsSuccess is true.
func (r Result) Value() any { return r.value }
