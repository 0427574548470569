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

	"github.com/declex/declex/internal/collections"
	"github.com/declex/declex/token"
)

// Expr is a rule-production combinator: token atom, silent token, eof atom,
// production reference, sequence, token choice, optional, guarded
// production choice, or the Iterate left-recursion rewrite. Expr values
// form the tagged-union AST that parse walks at runtime; end users build
// them with the constructor functions in this file rather than implementing
// the interface directly.
type Expr interface {
	parse(rt *runtime) Result
	collectTags(out collections.Set[string])
	collectRefs(out collections.Set[string])
	validate(errs *[]error)
}

// omitted marks a silent token's forwarded value so sequence-like
// combinators can drop it before invoking a Reducer.
type omitted struct{}

// flatten turns a Result's value into an argument slice for a Reducer,
// expanding a []any produced by Seq/list bodies and dropping any omitted
// (silent-token) entries.
func flatten(v any) []any {
	if args, ok := v.([]any); ok {
		return collections.FilterSlice(args, func(a any) bool {
			_, skip := a.(omitted)
			return !skip
		})
	}
	if _, skip := v.(omitted); skip {
		return nil
	}
	return []any{v}
}

// -- token atom / silent token -----------------------------------------

type tokenAtom struct {
	kind   token.Kind
	silent bool
}

// Token consumes a token of exactly kind, forwarding it to the Visitor.
func Token(kind token.Kind) Expr { return &tokenAtom{kind: kind} }

// Silent consumes a token of exactly kind without forwarding it — typically
// used for punctuation the parser needs but the visitor doesn't care about.
func Silent(kind token.Kind) Expr { return &tokenAtom{kind: kind, silent: true} }

func (e *tokenAtom) parse(rt *runtime) Result {
	tok := rt.tz.Peek()
	if tok.Kind != e.kind {
		rt.reportUnexpected(e.kind, tok)
		return Unmatched()
	}
	rt.tz.Bump()
	if e.silent {
		return Success(omitted{})
	}
	return Success(tok)
}

func (e *tokenAtom) collectTags(collections.Set[string]) {}
func (e *tokenAtom) collectRefs(collections.Set[string]) {}
func (e *tokenAtom) validate(*[]error)                    {}

// -- eof atom -------------------------------------------------------------

type eofAtom struct{}

// EOFAtom matches (without consuming, since there is nothing left to
// consume) iff the tokenizer has reached end of input.
func EOFAtom() Expr { return eofAtom{} }

func (e eofAtom) parse(rt *runtime) Result {
	if rt.tz.IsDone() {
		return Success(rt.tz.Peek())
	}
	rt.reportUnexpected(token.EOF, rt.tz.Peek())
	return Unmatched()
}

func (e eofAtom) collectTags(collections.Set[string]) {}
func (e eofAtom) collectRefs(collections.Set[string]) {}
func (e eofAtom) validate(*[]error)                    {}

// -- production reference --------------------------------------------------

type refExpr struct{ name string }

// Ref invokes another production by name, folding its value into this
// one's sequence the same way a token atom folds a token.
func Ref(name string) Expr { return refExpr{name: name} }

func (e refExpr) parse(rt *runtime) Result {
	prod, ok := rt.grammar.productions[e.name]
	if !ok {
		panic(fmt.Sprintf("grammar: Ref to unknown production %q", e.name))
	}
	return prod.parse(rt)
}

func (e refExpr) collectTags(out collections.Set[string]) { out.Add(e.name) }
func (e refExpr) collectRefs(out collections.Set[string]) { out.Add(e.name) }
func (e refExpr) validate(errs *[]error)                  {}

// -- sequence ---------------------------------------------------------------

type seqExpr struct{ parts []Expr }

// Seq parses each part in order, short-circuiting to Unmatched on the first
// that fails. Its forwarded value is the concatenation of each part's
// forwarded value(s), with silent tokens already dropped.
func Seq(parts ...Expr) Expr { return seqExpr{parts: parts} }

func (e seqExpr) parse(rt *runtime) Result {
	var args []any
	for _, part := range e.parts {
		res := part.parse(rt)
		if !res.IsSuccess() {
			return Unmatched()
		}
		args = append(args, flatten(res.Value())...)
	}
	return Success(args)
}

func (e seqExpr) collectTags(out collections.Set[string]) {
	for _, p := range e.parts {
		p.collectTags(out)
	}
}
func (e seqExpr) collectRefs(out collections.Set[string]) {
	for _, p := range e.parts {
		p.collectRefs(out)
	}
}
func (e seqExpr) validate(errs *[]error) {
	for _, p := range e.parts {
		p.validate(errs)
	}
}

// -- optional -----------------------------------------------------------

type optExpr struct {
	peek  token.Kind
	inner Expr
}

// Opt parses inner iff the next token is peekKind, otherwise succeeds with
// no forwarded value (an `A | empty` alternative). Go has no compile-time
// derivation of a combinator's leading-token set, so the peeked kind that
// selects inner is given explicitly rather than inferred.
func Opt(peekKind token.Kind, inner Expr) Expr { return optExpr{peek: peekKind, inner: inner} }

func (e optExpr) parse(rt *runtime) Result {
	if rt.tz.Peek().Kind != e.peek {
		return Success(omitted{})
	}
	return e.inner.parse(rt)
}

func (e optExpr) collectTags(out collections.Set[string]) { e.inner.collectTags(out) }
func (e optExpr) collectRefs(out collections.Set[string]) { e.inner.collectRefs(out) }
func (e optExpr) validate(errs *[]error)                  { e.inner.validate(errs) }

// -- token choice / production choice ------------------------------------

// ChoiceCase is one branch of a TokenChoice or ProductionChoice: Expr is
// parsed when the next token's kind equals Kind. A zero Kind (Kind{})
// marks the catch-all branch: the any-token sink for a TokenChoice, or the
// else_ arm of a guarded ProductionChoice.
type ChoiceCase struct {
	Kind token.Kind
	Expr Expr
}

type choiceExpr struct {
	name     string
	errKind  ErrorKind
	expected token.Kind // reported as the "expected" kind when ambiguous; best-effort
	cases    []ChoiceCase
	catchAll *ChoiceCase
}

func newChoice(name string, errKind ErrorKind, cases []ChoiceCase) *choiceExpr {
	e := &choiceExpr{name: name, errKind: errKind}
	for _, c := range cases {
		c := c
		if c.Kind.IsZero() {
			e.catchAll = &c
			continue
		}
		e.cases = append(e.cases, c)
	}
	return e
}

// TokenChoice is a one-token-lookahead alternation between token-shaped
// rules: the branch whose Kind equals the peeked token's kind is parsed.
// Construction fails (at Grammar.Build) if two cases share a Kind — the
// peek sets must be pairwise disjoint.
func TokenChoice(name string, cases ...ChoiceCase) Expr {
	return newChoice(name, ExhaustedTokenChoice, cases)
}

// ProductionChoice is a guarded production-level choice (`cond >> P |
// else_ >> Q`): same peek-dispatch mechanism as TokenChoice, but reports
// ExhaustedChoice rather than ExhaustedTokenChoice on failure.
func ProductionChoice(name string, cases ...ChoiceCase) Expr {
	return newChoice(name, ExhaustedChoice, cases)
}

func (e *choiceExpr) parse(rt *runtime) Result {
	tok := rt.tz.Peek()
	for _, c := range e.cases {
		if c.Kind == tok.Kind {
			return c.Expr.parse(rt)
		}
	}
	if e.catchAll != nil {
		return e.catchAll.Expr.parse(rt)
	}
	rt.reportError(Diagnostic{
		Kind:       e.errKind,
		Production: e.name,
		Expected:   e.expected,
		Got:        tok,
		Position:   rt.tz.PositionOf(tok.Offset),
	})
	return Unmatched()
}

func (e *choiceExpr) collectTags(out collections.Set[string]) {
	for _, c := range e.cases {
		c.Expr.collectTags(out)
	}
	if e.catchAll != nil {
		e.catchAll.Expr.collectTags(out)
	}
}

func (e *choiceExpr) collectRefs(out collections.Set[string]) {
	for _, c := range e.cases {
		c.Expr.collectRefs(out)
	}
	if e.catchAll != nil {
		e.catchAll.Expr.collectRefs(out)
	}
}

func (e *choiceExpr) validate(errs *[]error) {
	seen := map[token.Kind]bool{}
	for _, c := range e.cases {
		if seen[c.Kind] {
			*errs = append(*errs, fmt.Errorf("grammar: choice %q has two cases peeking on %s", e.name, c.Kind))
		}
		seen[c.Kind] = true
		c.Expr.validate(errs)
	}
	if e.catchAll != nil {
		e.catchAll.Expr.validate(errs)
	}
}

// -- left-recursion rewrite -------------------------------------------------

type iterateExpr struct {
	foldTag string
	base    Expr
	guard   token.Kind
	tail    Expr
}

// Iterate expresses direct left recursion `P := P + tail | base` as the
// iteration the engine would rewrite it into internally: parse base once,
// then, while the next token is guardKind, parse tail and fold it into the
// running value via the Reducer registered under foldTag (receiving
// [accumulator, tailValue]), until guardKind no longer matches.
func Iterate(foldTag string, base Expr, guardKind token.Kind, tail Expr) Expr {
	return iterateExpr{foldTag: foldTag, base: base, guard: guardKind, tail: tail}
}

func (e iterateExpr) parse(rt *runtime) Result {
	res := e.base.parse(rt)
	if !res.IsSuccess() {
		return Unmatched()
	}
	acc := res.Value()
	for rt.tz.Peek().Kind == e.guard {
		tres := e.tail.parse(rt)
		if !tres.IsSuccess() {
			return Unmatched()
		}
		acc = rt.visitor.invoke(e.foldTag, append([]any{acc}, flatten(tres.Value())...))
	}
	return Success(acc)
}

func (e iterateExpr) collectTags(out collections.Set[string]) {
	out.Add(e.foldTag)
	e.base.collectTags(out)
	e.tail.collectTags(out)
}

func (e iterateExpr) collectRefs(out collections.Set[string]) {
	e.base.collectRefs(out)
	e.tail.collectRefs(out)
}

func (e iterateExpr) validate(errs *[]error) {
	e.base.validate(errs)
	e.tail.validate(errs)
}
