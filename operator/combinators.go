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

import "github.com/declex/declex/token"

// PrefixReducer folds a matched prefix operator and its operand into a
// value. op is whatever OperatorMatcher.Match returned.
type PrefixReducer func(op any, operand any) any

// PostfixReducer folds an operand and its matched postfix operator.
type PostfixReducer func(operand any, op any) any

// BinaryReducer folds a left operand, a matched binary operator, and a
// right operand.
type BinaryReducer func(lhs any, op any, rhs any) any

// chainArity distinguishes single-application operator levels (at most one
// operator consumed) from chained ones (zero or more, iterated).
type chainArity int

const (
	arityChain chainArity = iota
	aritySingle
)

// -- prefix -------------------------------------------------------------------

type preOpLevel struct {
	op      OperatorMatcher
	inner   Level
	reduce  PrefixReducer
	arity   chainArity
}

// PreOpSingle recognizes at most one leading op before deferring to inner.
func PreOpSingle(op OperatorMatcher, inner Level, reduce PrefixReducer) Level {
	return preOpLevel{op: op, inner: inner, reduce: reduce, arity: aritySingle}
}

// PreOpChain recognizes zero or more leading ops, applying reduce from the
// innermost (last-consumed, rightmost-in-source) operator outward, so that
// "!!!x" folds as reduce(op1, reduce(op2, reduce(op3, x))) — the
// first-consumed operator becomes the outermost wrap.
func PreOpChain(op OperatorMatcher, inner Level, reduce PrefixReducer) Level {
	return preOpLevel{op: op, inner: inner, reduce: reduce, arity: arityChain}
}

func (l preOpLevel) hasMatchingPrecedence(tok token.Kind) bool {
	return l.op.Accepts(tok) || l.inner.hasMatchingPrecedence(tok)
}

func (l preOpLevel) parseBinary(rt *runtime) Result { return l.parseInfixOperand(rt) }

func (l preOpLevel) parseInfixOperand(rt *runtime) Result {
	if !l.op.Accepts(rt.tz.Peek().Kind) {
		return l.inner.parseInfixOperand(rt)
	}
	opVal, ok := l.op.Match(rt.tz)
	if !ok {
		return l.inner.parseInfixOperand(rt)
	}
	var operand Result
	if l.arity == aritySingle {
		operand = l.inner.parseInfixOperand(rt)
	} else {
		operand = l.parseInfixOperand(rt)
	}
	if !operand.IsSuccess() {
		return Unmatched()
	}
	return Success(l.reduce(opVal, operand.Value()))
}

// -- postfix ------------------------------------------------------------------

type postOpLevel struct {
	op     OperatorMatcher
	inner  Level
	reduce PostfixReducer
	arity  chainArity
}

// PostOpSingle recognizes at most one trailing op after inner.
func PostOpSingle(op OperatorMatcher, inner Level, reduce PostfixReducer) Level {
	return postOpLevel{op: op, inner: inner, reduce: reduce, arity: aritySingle}
}

// PostOpChain recognizes zero or more trailing ops, left to right, so
// "x++--" folds as reduce(reduce(x, op1), op2).
func PostOpChain(op OperatorMatcher, inner Level, reduce PostfixReducer) Level {
	return postOpLevel{op: op, inner: inner, reduce: reduce, arity: arityChain}
}

func (l postOpLevel) hasMatchingPrecedence(tok token.Kind) bool {
	return l.op.Accepts(tok) || l.inner.hasMatchingPrecedence(tok)
}

func (l postOpLevel) parseBinary(rt *runtime) Result { return l.parseInfixOperand(rt) }

func (l postOpLevel) parseInfixOperand(rt *runtime) Result {
	operand := l.inner.parseInfixOperand(rt)
	if !operand.IsSuccess() {
		return Unmatched()
	}
	val := operand.Value()
	for {
		if !l.op.Accepts(rt.tz.Peek().Kind) {
			return Success(val)
		}
		opVal, ok := l.op.Match(rt.tz)
		if !ok {
			return Success(val)
		}
		val = l.reduce(val, opVal)
		if l.arity == aritySingle {
			return Success(val)
		}
	}
}

// -- binary ---------------------------------------------------------------

type assoc int

const (
	assocSingle assoc = iota
	assocLeft
	assocRight
	// assocChain folds identically to assocLeft: the Reducer receives the
	// same nested BinaryReducer calls either way, with nothing in them that
	// marks which constructor built the level.
	assocChain
)

type binOpLevel struct {
	op     OperatorMatcher
	inner  Level
	reduce BinaryReducer
	assoc  assoc
}

// BinOpSingle recognizes at most one op between two inner operands. A
// second op after the right operand is left unconsumed; the level does not
// fail on it.
func BinOpSingle(op OperatorMatcher, inner Level, reduce BinaryReducer) Level {
	return binOpLevel{op: op, inner: inner, reduce: reduce, assoc: assocSingle}
}

// BinOpLeft recognizes a left-associative run: "a-b-c" folds as
// reduce(reduce(a, -, b), -, c).
func BinOpLeft(op OperatorMatcher, inner Level, reduce BinaryReducer) Level {
	return binOpLevel{op: op, inner: inner, reduce: reduce, assoc: assocLeft}
}

// BinOpRight recognizes a right-associative run: "a=b=c" folds as
// reduce(a, =, reduce(b, =, c)).
func BinOpRight(op OperatorMatcher, inner Level, reduce BinaryReducer) Level {
	return binOpLevel{op: op, inner: inner, reduce: reduce, assoc: assocRight}
}

// BinOpChain recognizes a run of identical-precedence operators the same
// way BinOpLeft does, but is meant for a Reducer that treats the whole run
// as one flat N-ary node rather than a strictly binary left-fold.
func BinOpChain(op OperatorMatcher, inner Level, reduce BinaryReducer) Level {
	return binOpLevel{op: op, inner: inner, reduce: reduce, assoc: assocChain}
}

func (l binOpLevel) hasMatchingPrecedence(tok token.Kind) bool {
	return l.op.Accepts(tok) || l.inner.hasMatchingPrecedence(tok)
}

func (l binOpLevel) parseInfixOperand(rt *runtime) Result { return l.parseBinary(rt) }

func (l binOpLevel) parseBinary(rt *runtime) Result {
	lhs := l.inner.parseBinary(rt)
	if !lhs.IsSuccess() {
		return Unmatched()
	}
	val := lhs.Value()

	if !l.op.Accepts(rt.tz.Peek().Kind) {
		return Success(val)
	}

	switch l.assoc {
	case assocSingle:
		opVal, ok := l.op.Match(rt.tz)
		if !ok {
			return Success(val)
		}
		rhs := l.inner.parseBinary(rt)
		if !rhs.IsSuccess() {
			return Unmatched()
		}
		return Success(l.reduce(val, opVal, rhs.Value()))

	case assocRight:
		opVal, ok := l.op.Match(rt.tz)
		if !ok {
			return Success(val)
		}
		rhs := l.parseBinary(rt)
		if !rhs.IsSuccess() {
			return Unmatched()
		}
		return Success(l.reduce(val, opVal, rhs.Value()))

	default: // assocLeft, assocChain
		for l.op.Accepts(rt.tz.Peek().Kind) {
			opVal, ok := l.op.Match(rt.tz)
			if !ok {
				break
			}
			rhs := l.inner.parseBinary(rt)
			if !rhs.IsSuccess() {
				return Unmatched()
			}
			val = l.reduce(val, opVal, rhs.Value())
		}
		return Success(val)
	}
}

// -- expr boundary -----------------------------------------------------------

type exprLevel struct{ inner Level }

// Expr marks a boundary below which no operator of inner's hierarchy (at
// any precedence) may follow once inner's expression has been fully
// parsed — used to reject e.g. a bitwise operator directly chained after
// an additive expression when the grammar requires an explicit grouping.
// A trailing token that hasMatchingPrecedence within inner is reported as
// IllegalOperatorChain rather than silently left unconsumed.
func Expr(inner Level) Level { return exprLevel{inner: inner} }

func (l exprLevel) hasMatchingPrecedence(tok token.Kind) bool {
	return l.inner.hasMatchingPrecedence(tok)
}

func (l exprLevel) parseInfixOperand(rt *runtime) Result { return l.parseBinary(rt) }

func (l exprLevel) parseBinary(rt *runtime) Result {
	res := l.inner.parseBinary(rt)
	if !res.IsSuccess() {
		return Unmatched()
	}
	if tok := rt.tz.Peek(); l.inner.hasMatchingPrecedence(tok.Kind) {
		rt.reportIllegalChain(tok)
		return Unmatched()
	}
	return res
}
