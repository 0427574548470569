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

import "github.com/declex/declex/internal/collections"

// namedExpr is the common shape of everything Grammar.productions maps a
// name to: a rule production, a list production, or an operator production
// mounted via MountOperator. Each knows how to parse itself and report
// diagnostics tagged with its own name.
type namedExpr interface {
	name() string
	parse(rt *runtime) Result
	collectTags(out collections.Set[string])
	collectRefs(out collections.Set[string])
	validate(errs *[]error)
}

// ruleProduction is a named rule production: a single Expr body whose
// forwarded value(s) are folded by the Visitor's reducer for name.
type ruleProduction struct {
	productionName string
	body           Expr
}

// RuleProduction declares a named rule production over body. The Visitor
// passed to Grammar.Build must register a Reducer for name.
func RuleProduction(name string, body Expr) *ruleProduction {
	return &ruleProduction{productionName: name, body: body}
}

func (p *ruleProduction) name() string { return p.productionName }

func (p *ruleProduction) parse(rt *runtime) Result {
	prev := rt.currentProduction
	rt.currentProduction = p.productionName
	res := p.body.parse(rt)
	rt.currentProduction = prev
	if !res.IsSuccess() {
		return Unmatched()
	}
	return Success(rt.visitor.invoke(p.productionName, flatten(res.Value())))
}

func (p *ruleProduction) collectTags(out collections.Set[string]) {
	out.Add(p.productionName)
	p.body.collectTags(out)
}

func (p *ruleProduction) collectRefs(out collections.Set[string]) { p.body.collectRefs(out) }

func (p *ruleProduction) validate(errs *[]error) { p.body.validate(errs) }
