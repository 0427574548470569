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

// ListOptions configures a list production. Separator and End are ignored
// unless the corresponding HasSeparator/HasEnd flag is set.
type ListOptions struct {
	Element       Expr
	Separator     token.Kind
	HasSeparator  bool
	End           token.Kind
	HasEnd        bool
	AllowEmpty    bool
	AllowTrailing bool
}

// listProduction implements both the plain list and, via BracketedList, the
// bracketed list: `element` repeated, separated by an optional separator
// token, bounded by an optional end token.
//
// Three Reducer tags are registered against name: name+".empty" (called
// with no arguments when an empty list is permitted and taken), name+
// ".first" (called with the first element's value), and name+".append"
// (called with [accumulator, nextElementValue] for every subsequent
// element).
type listProduction struct {
	productionName string
	opts           ListOptions
}

func emptyTag(name string) string  { return name + ".empty" }
func firstTag(name string) string  { return name + ".first" }
func appendTag(name string) string { return name + ".append" }

// List declares a plain list production.
func List(name string, opts ListOptions) *listProduction {
	return &listProduction{productionName: name, opts: opts}
}

// BracketedList declares a list production framed by required open/close
// tokens; the list's end token is implicitly close. The bracket tokens are
// consumed but never forwarded to the visitor.
func BracketedList(name string, open, close token.Kind, opts ListOptions) Expr {
	opts.End = close
	opts.HasEnd = true
	body := &listProduction{productionName: name, opts: opts}
	return Seq(Silent(open), bodyExpr{body}, Silent(close))
}

// bodyExpr adapts a *listProduction (a namedExpr, not an Expr) so it can sit
// inside a Seq built by BracketedList.
type bodyExpr struct{ p *listProduction }

func (b bodyExpr) parse(rt *runtime) Result                { return b.p.parse(rt) }
func (b bodyExpr) collectTags(out collections.Set[string]) { b.p.collectTags(out) }
func (b bodyExpr) collectRefs(out collections.Set[string]) { b.p.collectRefs(out) }
func (b bodyExpr) validate(errs *[]error)                  { b.p.validate(errs) }

func (p *listProduction) name() string { return p.productionName }

func (p *listProduction) parse(rt *runtime) Result {
	prev := rt.currentProduction
	rt.currentProduction = p.productionName
	defer func() { rt.currentProduction = prev }()

	o := p.opts
	if o.AllowEmpty && o.HasEnd && rt.tz.Peek().Kind == o.End {
		return Success(rt.visitor.invoke(emptyTag(p.productionName), nil))
	}

	first := o.Element.parse(rt)
	if !first.IsSuccess() {
		return Unmatched()
	}
	acc := rt.visitor.invoke(firstTag(p.productionName), flatten(first.Value()))

	for {
		if o.HasSeparator {
			if rt.tz.Peek().Kind != o.Separator {
				break
			}
			rt.tz.Bump()
			if o.AllowTrailing && o.HasEnd && rt.tz.Peek().Kind == o.End {
				break
			}
		} else if o.HasEnd && rt.tz.Peek().Kind == o.End {
			break
		}

		elem := o.Element.parse(rt)
		if !elem.IsSuccess() {
			return Unmatched()
		}
		acc = rt.visitor.invoke(appendTag(p.productionName), append([]any{acc}, flatten(elem.Value())...))
	}

	return Success(acc)
}

func (p *listProduction) collectTags(out collections.Set[string]) {
	if p.opts.AllowEmpty {
		out.Add(emptyTag(p.productionName))
	}
	out.Add(firstTag(p.productionName))
	out.Add(appendTag(p.productionName))
	p.opts.Element.collectTags(out)
}

func (p *listProduction) collectRefs(out collections.Set[string]) {
	p.opts.Element.collectRefs(out)
}

func (p *listProduction) validate(errs *[]error) {
	o := p.opts
	if (o.AllowEmpty || o.AllowTrailing) && !o.HasEnd {
		*errs = append(*errs, fmt.Errorf("grammar: list %q requires an end token to allow_empty or allow_trailing", p.productionName))
	}
	if !o.HasSeparator && !o.HasEnd {
		*errs = append(*errs, fmt.Errorf("grammar: list %q has neither a separator nor an end token and can never terminate", p.productionName))
	}
	o.Element.validate(errs)
}
