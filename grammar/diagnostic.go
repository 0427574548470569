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

package grammar

import (
	"fmt"

	"github.com/declex/declex/lexer"
	"github.com/declex/declex/token"
)

// ErrorKind identifies one of the four ways a parse can fail.
type ErrorKind int

const (
	// UnexpectedToken: a production expected a specific token kind and
	// found something else (or EOF) at the current cursor.
	UnexpectedToken ErrorKind = iota
	// ExhaustedTokenChoice: a token-choice alternation found no case
	// whose kind matched the peeked token, and no catch-all case.
	ExhaustedTokenChoice
	// ExhaustedChoice: a production-level guarded choice fired no
	// branch and had no else_ case.
	ExhaustedChoice
	// IllegalOperatorChain: an expr boundary rejected a trailing
	// operator of the wrapped hierarchy or above.
	IllegalOperatorChain
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected_token"
	case ExhaustedTokenChoice:
		return "exhausted_token_choice"
	case ExhaustedChoice:
		return "exhausted_choice"
	case IllegalOperatorChain:
		return "illegal_operator_chain"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Diagnostic carries everything a Visitor's error callback needs to format
// a `file:line:col: message` style report.
type Diagnostic struct {
	Kind       ErrorKind
	Production string        // the production or combinator that raised the error
	Expected   token.Kind    // zero Kind if not applicable to this ErrorKind
	Got        token.Token   // the token found at the cursor (IsEOF() if at end)
	Position   lexer.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s in %s (got %s)", d.Position, d.Kind, d.Expected, d.Production, d.Got)
}
