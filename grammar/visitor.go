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

import "fmt"

// Reducer folds the forwarded sub-results of one successful production
// parse (tokens and sub-production values, with silent tokens already
// omitted) into the production's value.
type Reducer func(args []any) any

// ErrorCallback reports a single failed parse to the caller.
type ErrorCallback func(Diagnostic)

// Visitor is the record of callbacks a Grammar invokes: one Reducer per
// named production (including the synthetic fold tags introduced by
// Iterate), and one ErrorCallback per ErrorKind. Go productions are
// assembled at runtime rather than as distinct static types, so — as the
// source material does for dynamically-typed targets — missing callbacks
// are caught by an explicit registry check in Grammar.Build rather than by
// the type system.
type Visitor struct {
	reducers map[string]Reducer
	errors   map[ErrorKind]ErrorCallback
}

// NewVisitor returns an empty VisitorBuilder.
func NewVisitor() *VisitorBuilder {
	return &VisitorBuilder{
		reducers: map[string]Reducer{},
		errors:   map[ErrorKind]ErrorCallback{},
	}
}

// VisitorBuilder accumulates callbacks before Build assembles them into an
// immutable Visitor.
type VisitorBuilder struct {
	reducers map[string]Reducer
	errors   map[ErrorKind]ErrorCallback
}

// OnProduction registers the reducer invoked for every successful parse of
// the named production (or Iterate fold tag).
func (b *VisitorBuilder) OnProduction(name string, fn Reducer) *VisitorBuilder {
	b.reducers[name] = fn
	return b
}

// OnError registers the callback invoked when a parse fails with kind.
func (b *VisitorBuilder) OnError(kind ErrorKind, fn ErrorCallback) *VisitorBuilder {
	b.errors[kind] = fn
	return b
}

// Build freezes the accumulated callbacks.
func (b *VisitorBuilder) Build() *Visitor {
	return &Visitor{reducers: b.reducers, errors: b.errors}
}

func (v *Visitor) invoke(tag string, args []any) any {
	fn, ok := v.reducers[tag]
	if !ok {
		// Grammar.Build validates every referenced tag has a reducer
		// before a Visitor is ever handed to Parse; reaching here means
		// that validation was bypassed.
		panic(fmt.Sprintf("grammar: no reducer registered for %q", tag))
	}
	return fn(args)
}

func (v *Visitor) reportError(d Diagnostic) {
	if fn, ok := v.errors[d.Kind]; ok {
		fn(d)
	}
}

// allErrorKinds enumerates ErrorKind for Grammar.Build's completeness check.
var allErrorKinds = []ErrorKind{UnexpectedToken, ExhaustedTokenChoice, ExhaustedChoice, IllegalOperatorChain}
