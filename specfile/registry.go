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

// Package specfile lets a token specification be described in YAML and
// discovered on disk, for callers that would rather keep a token table out
// of Go source. The engine itself (lexspec.Builder) remains entirely
// programmatic; this package is sugar that replays the same Builder calls
// an end user would make directly, reading the token list and every
// literal spelling from YAML and resolving rule/identifier matching
// functions — which YAML cannot serialize — by name against a Registry the
// caller populates in Go.
package specfile

import (
	"fmt"

	"github.com/declex/declex/match"
)

// Registry is the set of rule and identifier matching functions a Spec
// Document may reference by name via ruleRef. Names are looked up at Load
// time; an unregistered ruleRef is a construction-time error.
type Registry struct {
	lengthFuncs map[string]func(data []byte) int
	matchers    map[string]match.Matcher
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		lengthFuncs: map[string]func(data []byte) int{},
		matchers:    map[string]match.Matcher{},
	}
}

// RuleLength registers a length function under name: the common case for a
// rule token (or an identifier's matching rule), matching whatever prefix
// of data the function reports as consumed.
func (r *Registry) RuleLength(name string, fn func(data []byte) int) *Registry {
	r.lengthFuncs[name] = fn
	return r
}

// RuleMatcher registers an arbitrary match.Matcher under name, for a rule
// token whose matching logic needs to report more than one possible kind
// (e.g. a regexp-backed matcher).
func (r *Registry) RuleMatcher(name string, m match.Matcher) *Registry {
	r.matchers[name] = m
	return r
}

func (r *Registry) lookupLength(name string) (func(data []byte) int, error) {
	fn, ok := r.lengthFuncs[name]
	if !ok {
		return nil, fmt.Errorf("specfile: ruleRef %q is not registered as a length matcher", name)
	}
	return fn, nil
}

func (r *Registry) lookupMatcher(name string) (match.Matcher, error) {
	m, ok := r.matchers[name]
	if !ok {
		return nil, fmt.Errorf("specfile: ruleRef %q is not registered as a match.Matcher", name)
	}
	return m, nil
}
