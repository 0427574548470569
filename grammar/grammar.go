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
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/declex/declex/internal/collections"
	"github.com/declex/declex/lexer"
	"github.com/declex/declex/token"
)

// runtime is the per-Parse-call state threaded through every Expr.parse and
// namedExpr.parse: the tokenizer being consumed, the Visitor being invoked,
// the Grammar that owns the production set, and the name of whichever
// production is currently on the call stack (for diagnostics).
type runtime struct {
	tz                *lexer.Tokenizer
	visitor           *Visitor
	grammar           *Grammar
	currentProduction string
}

func (rt *runtime) reportUnexpected(expected token.Kind, got token.Token) {
	rt.visitor.reportError(Diagnostic{
		Kind:       UnexpectedToken,
		Production: rt.currentProduction,
		Expected:   expected,
		Got:        got,
		Position:   rt.tz.PositionOf(got.Offset),
	})
}

func (rt *runtime) reportError(d Diagnostic) {
	rt.visitor.reportError(d)
}

// Grammar is an immutable, validated collection of named productions with a
// designated start production. Build the productions with RuleProduction,
// List, and BracketedList, then assemble them with Builder.
type Grammar struct {
	start       string
	productions map[string]namedExpr
}

// Builder accumulates named productions before Build validates and freezes
// them into a Grammar.
type Builder struct {
	start       string
	productions map[string]namedExpr
	order       []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{productions: map[string]namedExpr{}}
}

// Start designates the production Grammar.Parse begins from. It must also be
// registered via Production.
func (b *Builder) Start(name string) *Builder {
	b.start = name
	return b
}

// Production registers a named production (a *ruleProduction from
// RuleProduction, or a *listProduction from List; BracketedList returns a
// plain Expr and is registered by wrapping it in RuleProduction instead).
func (b *Builder) Production(p namedExpr) *Builder {
	if _, exists := b.productions[p.name()]; !exists {
		b.order = append(b.order, p.name())
	}
	b.productions[p.name()] = p
	return b
}

// Build validates the accumulated productions against visitor and, if every
// check passes, returns an immutable Grammar. Validation is construction-time
// only — a successfully built Grammar never panics due to a missing reducer,
// a dangling Ref, or an unregistered ErrorKind callback.
func (b *Builder) Build(visitor *Visitor) (*Grammar, error) {
	var errs []error

	if b.start == "" {
		errs = append(errs, errors.New("grammar: no start production set"))
	} else if _, ok := b.productions[b.start]; !ok {
		errs = append(errs, fmt.Errorf("grammar: start production %q is not registered", b.start))
	}

	tags := collections.Set[string]{}
	refs := collections.Set[string]{}
	for _, name := range b.order {
		p := b.productions[name]
		p.collectTags(tags)
		p.collectRefs(refs)
		p.validate(&errs)
	}

	registeredReducers := collections.ToSet(slices.Collect(maps.Keys(visitor.reducers)))
	for _, tag := range tags.Diff(registeredReducers).SortedValues(strings.Compare) {
		errs = append(errs, fmt.Errorf("grammar: no reducer registered for production/tag %q", tag))
	}

	registeredProductions := collections.ToSet(slices.Collect(maps.Keys(b.productions)))
	for _, ref := range refs.Diff(registeredProductions).SortedValues(strings.Compare) {
		errs = append(errs, fmt.Errorf("grammar: Ref(%q) does not name a registered production", ref))
	}

	for _, kind := range allErrorKinds {
		if _, ok := visitor.errors[kind]; !ok {
			errs = append(errs, fmt.Errorf("grammar: no error callback registered for %s", kind))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Grammar{start: b.start, productions: b.productions}, nil
}

// Parse runs g's start production over tz, invoking visitor's reducers and
// error callbacks as it goes. Its returned Result carries the start
// production's forwarded value on success.
func (g *Grammar) Parse(tz *lexer.Tokenizer, visitor *Visitor) Result {
	rt := &runtime{tz: tz, visitor: visitor, grammar: g, currentProduction: g.start}
	return g.productions[g.start].parse(rt)
}
