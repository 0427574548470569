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
	"github.com/declex/declex/internal/collections"
	"github.com/declex/declex/operator"
)

// operatorProduction mounts an *operator.Hierarchy as a named grammar
// production. A hierarchy folds its own result inside its Level chain, so
// — unlike ruleProduction — its value is forwarded as-is, with no Visitor
// Reducer tag of its own to register.
type operatorProduction struct {
	productionName string
	hierarchy      *operator.Hierarchy
}

// MountOperator wraps hierarchy as a grammar production named name. Any
// atom inside hierarchy that needs to call back into a sibling grammar
// production (via operator.AtomFunc) must capture the Grammar itself
// through a closure built after the whole Grammar.Builder is assembled,
// since a Hierarchy has no notion of production names or Ref resolution —
// it is handed a bare *lexer.Tokenizer and nothing else.
func MountOperator(name string, hierarchy *operator.Hierarchy) *operatorProduction {
	return &operatorProduction{productionName: name, hierarchy: hierarchy}
}

func (p *operatorProduction) name() string { return p.productionName }

func (p *operatorProduction) parse(rt *runtime) Result {
	prev := rt.currentProduction
	rt.currentProduction = p.productionName
	res := p.hierarchy.Parse(rt.tz, func(d operator.Diagnostic) {
		rt.visitor.reportError(translateOperatorDiagnostic(p.productionName, d))
	})
	rt.currentProduction = prev
	if !res.IsSuccess() {
		return Unmatched()
	}
	return Success(res.Value())
}

// translateOperatorDiagnostic turns an operator.Diagnostic into the
// equivalent grammar.Diagnostic, preserving the production name the
// mounting Grammar knows this Hierarchy by rather than the Hierarchy's own
// internal name.
func translateOperatorDiagnostic(production string, d operator.Diagnostic) Diagnostic {
	kind := UnexpectedToken
	if d.Kind == operator.IllegalOperatorChain {
		kind = IllegalOperatorChain
	}
	return Diagnostic{
		Kind:       kind,
		Production: production,
		Expected:   d.Expected,
		Got:        d.Got,
		Position:   d.Position,
	}
}

// An operator production folds entirely within its own Level chain and
// never refers to another grammar production by name, so it contributes
// nothing to either completeness check.
func (p *operatorProduction) collectTags(out collections.Set[string]) {}
func (p *operatorProduction) collectRefs(out collections.Set[string]) {}
func (p *operatorProduction) validate(errs *[]error)                  {}
