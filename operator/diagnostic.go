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

package operator

import (
	"fmt"

	"github.com/declex/declex/lexer"
	"github.com/declex/declex/token"
)

// ErrorKind identifies one of the two ways an operator-precedence parse can
// fail; both are a subset of grammar.ErrorKind's four, since an operator
// hierarchy never performs a token or production choice of its own.
type ErrorKind int

const (
	// UnexpectedToken: a required operand, operator, or closing bracket
	// was not found at the current cursor.
	UnexpectedToken ErrorKind = iota
	// IllegalOperatorChain: an expr boundary rejected a trailing operator
	// of the wrapped hierarchy or above.
	IllegalOperatorChain
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected_token"
	case IllegalOperatorChain:
		return "illegal_operator_chain"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Diagnostic carries everything a Hierarchy's ErrorCallback needs to format
// a report; its shape mirrors grammar.Diagnostic so a caller mounting a
// Hierarchy inside a grammar production can translate one into the other
// field-for-field.
type Diagnostic struct {
	Kind       ErrorKind
	Production string
	Expected   token.Kind // zero Kind if not applicable to this ErrorKind
	Got        token.Token
	Position   lexer.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s in %s (got %s)", d.Position, d.Kind, d.Expected, d.Production, d.Got)
}

// ErrorCallback reports a single failed parse to the caller.
type ErrorCallback func(Diagnostic)

// runtime is the per-Parse-call state threaded through every Level method.
type runtime struct {
	tz         *lexer.Tokenizer
	report     ErrorCallback
	production string
}

func (rt *runtime) reportUnexpected(expected token.Kind, got token.Token) {
	rt.report(Diagnostic{
		Kind:       UnexpectedToken,
		Production: rt.production,
		Expected:   expected,
		Got:        got,
		Position:   rt.tz.PositionOf(got.Offset),
	})
}

func (rt *runtime) reportIllegalChain(got token.Token) {
	rt.report(Diagnostic{
		Kind:       IllegalOperatorChain,
		Production: rt.production,
		Got:        got,
		Position:   rt.tz.PositionOf(got.Offset),
	})
}
