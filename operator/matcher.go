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
	"github.com/declex/declex/lexer"
	"github.com/declex/declex/token"
)

// OperatorMatcher recognizes one operator at the tokenizer's current
// position. It unifies the token-kind case (the operator is one of a fixed
// set of token kinds, via TokenOperator) and the sub-production case (the
// operator is itself a parsed production returning an operator value, e.g.
// a compound assignment spelled out as more than one token, via
// ProductionOperator) behind a single abstraction every prefix/postfix/
// binary combinator is built on.
type OperatorMatcher interface {
	// Accepts reports whether tok could begin a match, without consuming
	// anything. Used for precedence/chain-boundary checks that must not
	// mutate the tokenizer.
	Accepts(tok token.Kind) bool
	// Match attempts to recognize and consume one operator at the
	// tokenizer's current position, returning its value for the Reducer.
	Match(tz *lexer.Tokenizer) (value any, ok bool)
}

// tokenSetMatcher is the *_op_* case: the operator is exactly one token of
// one of a fixed set of kinds, and its value is the token itself.
type tokenSetMatcher struct{ kinds []token.Kind }

// TokenOperator declares an operator recognized as a single token of one of
// kinds. The Reducer receives the matched token.Token as the operator value.
func TokenOperator(kinds ...token.Kind) OperatorMatcher { return tokenSetMatcher{kinds: kinds} }

func (m tokenSetMatcher) Accepts(tok token.Kind) bool {
	for _, k := range m.kinds {
		if k == tok {
			return true
		}
	}
	return false
}

func (m tokenSetMatcher) Match(tz *lexer.Tokenizer) (any, bool) {
	tok := tz.Peek()
	if !m.Accepts(tok.Kind) {
		return nil, false
	}
	tz.Bump()
	return tok, true
}

// productionMatcher is the *_prod_* case: the operator is itself a
// sub-production, e.g. a multi-token compound operator, whose own parse
// function both recognizes and folds it into a value.
type productionMatcher struct {
	leading []token.Kind
	parse   func(tz *lexer.Tokenizer) (any, bool)
}

// ProductionOperator declares an operator recognized by parse, a
// rule-production-shaped function that consumes whatever tokens it needs
// and returns its folded operator value. leading lists the token kinds that
// may begin a match, so Accepts can answer without invoking parse.
func ProductionOperator(parse func(tz *lexer.Tokenizer) (any, bool), leading ...token.Kind) OperatorMatcher {
	return productionMatcher{leading: leading, parse: parse}
}

func (m productionMatcher) Accepts(tok token.Kind) bool {
	for _, k := range m.leading {
		if k == tok {
			return true
		}
	}
	return false
}

func (m productionMatcher) Match(tz *lexer.Tokenizer) (any, bool) {
	if !m.Accepts(tz.Peek().Kind) {
		return nil, false
	}
	return m.parse(tz)
}
