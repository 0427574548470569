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

// Level is one tier of a Pratt operator-precedence hierarchy, built by
// wrapping a tighter-binding Level (its "inner") with one more concern:
// a prefix, postfix, or binary operator family, a parenthesized grouping,
// an expr boundary, or an A/B alternative between two hierarchies sharing
// an atom. End users never implement Level directly; they compose the
// constructor functions in this file and combinators.go.
type Level interface {
	// hasMatchingPrecedence reports whether tok is one of this level's own
	// operators, or (transitively) one of some level nested inside it —
	// i.e. whether tok is recognized anywhere in this level's hierarchy.
	hasMatchingPrecedence(tok token.Kind) bool
	// parseInfixOperand parses a single operand as seen from outside this
	// level: for a pure operator level (prefix/postfix/binary) this is
	// the same as parseBinary, since the whole folded expression at this
	// level is what an enclosing level treats as one operand.
	parseInfixOperand(rt *runtime) Result
	// parseBinary parses a full expression at this level, folding any
	// operators belonging to this level according to its declared
	// associativity, after first parsing its inner level's own full
	// expression as the base operand.
	parseBinary(rt *runtime) Result
}

// Hierarchy is the entrypoint of an assembled operator-precedence chain.
type Hierarchy struct {
	name string
	top  Level
}

// NewHierarchy names and freezes an assembled Level chain as an entrypoint.
// name is reported as a Diagnostic's Production field.
func NewHierarchy(name string, top Level) *Hierarchy {
	return &Hierarchy{name: name, top: top}
}

// Parse runs h over tz, invoking report for every failure. Its Result
// carries the fully-reduced expression value on success.
func (h *Hierarchy) Parse(tz *lexer.Tokenizer, report ErrorCallback) Result {
	rt := &runtime{tz: tz, report: report, production: h.name}
	return h.top.parseBinary(rt)
}

// -- atom -------------------------------------------------------------------

type atomTokenLevel struct{ kind token.Kind }

// AtomToken is the base operand of a hierarchy: a single token of kind.
func AtomToken(kind token.Kind) Level { return atomTokenLevel{kind: kind} }

func (l atomTokenLevel) hasMatchingPrecedence(token.Kind) bool { return false }
func (l atomTokenLevel) parseInfixOperand(rt *runtime) Result  { return l.parseBinary(rt) }
func (l atomTokenLevel) parseBinary(rt *runtime) Result {
	tok := rt.tz.Peek()
	if tok.Kind != l.kind {
		rt.reportUnexpected(l.kind, tok)
		return Unmatched()
	}
	rt.tz.Bump()
	return Success(tok)
}

type atomFuncLevel struct {
	parse func(tz *lexer.Tokenizer) (any, bool)
}

// AtomFunc is the base operand of a hierarchy parsed by an arbitrary
// function — typically a grammar rule production mounted as this
// hierarchy's atom. parse reports its own diagnostics on failure via
// whatever mechanism it belongs to; when parse returns ok=false this Level
// returns Unmatched without reporting a Diagnostic of its own, since it has
// no insight into why parse failed.
func AtomFunc(parse func(tz *lexer.Tokenizer) (any, bool)) Level {
	return atomFuncLevel{parse: parse}
}

func (l atomFuncLevel) hasMatchingPrecedence(token.Kind) bool { return false }
func (l atomFuncLevel) parseInfixOperand(rt *runtime) Result  { return l.parseBinary(rt) }
func (l atomFuncLevel) parseBinary(rt *runtime) Result {
	val, ok := l.parse(rt.tz)
	if !ok {
		return Unmatched()
	}
	return Success(val)
}

// -- parenthesized ------------------------------------------------------------

type parenLevel struct {
	open, close token.Kind
	expr        Level // the full hierarchy to parse between the brackets
}

// Parenthesized consumes open, recursively parses expr's complete
// expression, and requires close. expr is normally the Hierarchy's own top
// Level (combined with an atom via Alt), tied together with Recursive since
// Go cannot let a Level reference its own not-yet-constructed chain.
func Parenthesized(open, close token.Kind, expr Level) Level {
	return parenLevel{open: open, close: close, expr: expr}
}

func (l parenLevel) hasMatchingPrecedence(tok token.Kind) bool { return tok == l.open }
func (l parenLevel) parseInfixOperand(rt *runtime) Result      { return l.parseBinary(rt) }
func (l parenLevel) parseBinary(rt *runtime) Result {
	if rt.tz.Peek().Kind != l.open {
		rt.reportUnexpected(l.open, rt.tz.Peek())
		return Unmatched()
	}
	rt.tz.Bump()
	res := l.expr.parseBinary(rt)
	if !res.IsSuccess() {
		return Unmatched()
	}
	closeTok := rt.tz.Peek()
	if closeTok.Kind != l.close {
		rt.reportUnexpected(l.close, closeTok)
		return Unmatched()
	}
	rt.tz.Bump()
	return res
}

// -- recursive tie-knot -------------------------------------------------------

// Recursive is a Level whose real implementation is supplied after
// construction via Set, letting a hierarchy reference its own top (e.g. for
// Parenthesized's inner expression) the same way grammar.Ref lets a
// production refer to itself — Go has no way to build a self-referential
// value before it exists.
type Recursive struct{ level Level }

// NewRecursive returns an unset Recursive; call Set once the full hierarchy
// is assembled and before any Parse call.
func NewRecursive() *Recursive { return &Recursive{} }

// Set ties the knot. Calling it twice, or never, is a construction error on
// the caller's part — Parse will panic if Set was never called.
func (r *Recursive) Set(level Level) { r.level = level }

func (r *Recursive) hasMatchingPrecedence(tok token.Kind) bool { return r.level.hasMatchingPrecedence(tok) }
func (r *Recursive) parseInfixOperand(rt *runtime) Result      { return r.level.parseInfixOperand(rt) }
func (r *Recursive) parseBinary(rt *runtime) Result            { return r.level.parseBinary(rt) }

// -- A / B hierarchy alternative ----------------------------------------------

type altLevel struct{ first, second Level }

// Alt combines two operator hierarchies sharing a common atom. first is
// parsed on trial from a backtracking Mark, with its diagnostics silenced;
// if it succeeds its result is kept, otherwise the tokenizer is rewound and
// second is parsed. The choice depends only on whether first parses, not on
// which hierarchy's operators accept the token that follows: a first
// hierarchy that succeeds on a prefix of the input wins even when the next
// operator belongs only to second.
func Alt(first, second Level) Level { return altLevel{first: first, second: second} }

func (l altLevel) hasMatchingPrecedence(tok token.Kind) bool {
	return l.first.hasMatchingPrecedence(tok) || l.second.hasMatchingPrecedence(tok)
}

func (l altLevel) parseInfixOperand(rt *runtime) Result { return l.tryBoth(rt, Level.parseInfixOperand) }
func (l altLevel) parseBinary(rt *runtime) Result       { return l.tryBoth(rt, Level.parseBinary) }

func (l altLevel) tryBoth(rt *runtime, parse func(Level, *runtime) Result) Result {
	mark := rt.tz.Save()
	silent := &runtime{tz: rt.tz, production: rt.production, report: func(Diagnostic) {}}
	if res := parse(l.first, silent); res.IsSuccess() {
		return res
	}
	rt.tz.Reset(mark)
	return parse(l.second, rt)
}
