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

// Package lexspec is the declarative layer on top of match: callers list
// literal, rule, and identifier/keyword token kinds as a flat declaration
// table, and Builder.Build assembles them into an immutable Spec backed by a
// match.Trie, reporting every construction-time error (duplicate literal or
// keyword spelling, duplicate declaration name, keyword with no identifier
// rule, a second identifier rule) at once rather than on first use.
package lexspec

import (
	"fmt"
	"sort"

	"github.com/declex/declex/match"
	"github.com/declex/declex/token"
)

type keywordDecl struct {
	identifier string
	spelling   string
	kind       token.Kind
}

// Builder accumulates token declarations before Build assembles them into a
// Spec. The zero Builder is not usable; construct one with NewBuilder.
type Builder struct {
	nextID int

	literalOrder []string
	literals     map[string]string // name -> spelling
	literalKinds map[string]token.Kind

	ruleOrder  []string
	ruleKinds  map[string]token.Kind
	ruleMatch  map[string]match.Matcher
	conflicts  map[string][]string

	identifiers map[string]token.Kind
	idMatchFn   map[string]func([]byte) int
	keywords    []keywordDecl

	whitespace map[token.Kind]bool

	errs []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nextID:       1,
		literals:     map[string]string{},
		literalKinds: map[string]token.Kind{},
		ruleKinds:    map[string]token.Kind{},
		ruleMatch:    map[string]match.Matcher{},
		conflicts:    map[string][]string{},
		identifiers:  map[string]token.Kind{},
		idMatchFn:    map[string]func([]byte) int{},
		whitespace:   map[token.Kind]bool{},
	}
}

func (b *Builder) newKind(name string) token.Kind {
	k := token.NewKind(b.nextID, name)
	b.nextID++
	return k
}

func (b *Builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

// Literal declares a fixed-spelling token, e.g. an operator or punctuator.
// Literal spellings must be unique across the whole Spec; duplicates are
// reported by Build, not by this call, so declaration order never matters
// for error reporting.
func (b *Builder) Literal(name, spelling string) token.Kind {
	if spelling == "" {
		b.fail("lexspec: literal %q has empty spelling", name)
	}
	if _, ok := b.literalKinds[name]; ok {
		b.fail("lexspec: literal %q declared twice", name)
		return b.literalKinds[name]
	}
	k := b.newKind(name)
	b.literalOrder = append(b.literalOrder, name)
	b.literals[name] = spelling
	b.literalKinds[name] = k
	return k
}

// Rule declares a rule token matched by counting leading bytes of input that
// form a valid token (e.g. a run of digits). conflicts lists the spellings
// of literals already declared via Literal that this rule's matches may
// collide with; see match.Trie for how conflicts are resolved.
func (b *Builder) Rule(name string, fn func(data []byte) int, conflicts ...string) token.Kind {
	if _, ok := b.ruleKinds[name]; ok {
		b.fail("lexspec: rule %q declared twice", name)
		return b.ruleKinds[name]
	}
	k := b.newKind(name)
	b.ruleOrder = append(b.ruleOrder, name)
	b.ruleKinds[name] = k
	b.ruleMatch[name] = match.LengthMatcher(k, fn)
	b.conflicts[name] = conflicts
	return k
}

// RuleMatcher declares a rule token backed by an arbitrary match.Matcher
// (e.g. one wrapping a regexp.Regexp), for matchers that need to report a
// kind other than a single fixed one.
func (b *Builder) RuleMatcher(name string, m match.Matcher, conflicts ...string) {
	if _, ok := b.ruleMatch[name]; ok {
		b.fail("lexspec: rule %q declared twice", name)
		return
	}
	b.ruleOrder = append(b.ruleOrder, name)
	b.ruleMatch[name] = m
	b.conflicts[name] = conflicts
}

// Identifier declares the identifier rule token kind, matched by idMatch
// (a length function over leading bytes). A Spec has at most one
// identifier rule; Keyword declarations attach to it.
func (b *Builder) Identifier(name string, idMatch func(data []byte) int) token.Kind {
	if len(b.identifiers) > 0 {
		b.fail("lexspec: only one identifier rule may be declared (got %q after one already declared)", name)
	}
	k := b.newKind(name)
	b.identifiers[name] = k
	b.idMatchFn[name] = idMatch
	return k
}

// Keyword declares a keyword: a reserved spelling that, when it exactly
// matches the identifier rule's matched span, wins over the plain
// identifier kind. Keyword must be called after the Identifier it attaches
// to; identifierName must match the name passed to that Identifier call.
func (b *Builder) Keyword(identifierName, name, spelling string) token.Kind {
	if _, ok := b.identifiers[identifierName]; !ok {
		b.fail("lexspec: keyword %q declared against unknown identifier rule %q", name, identifierName)
	}
	k := b.newKind(name)
	b.keywords = append(b.keywords, keywordDecl{identifier: identifierName, spelling: spelling, kind: k})
	return k
}

// Whitespace marks kind as whitespace: the lexer skips tokens of this kind
// automatically and the grammar and operator runtimes never see them.
func (b *Builder) Whitespace(kind token.Kind) { b.whitespace[kind] = true }

// Build validates every declaration and assembles the immutable Spec. All
// construction-time errors accumulated across prior calls (and any raised
// while assembling the trie) are joined into a single returned error.
func (b *Builder) Build() (*Spec, error) {
	errs := append([]error(nil), b.errs...)

	trie := match.NewTrie()
	for _, name := range b.literalOrder {
		if err := trie.InsertLiteral(b.literalKinds[name], b.literals[name]); err != nil {
			errs = append(errs, err)
		}
	}

	// Keywords for a given identifier rule are folded into a single
	// IdentifierRule composite so that keyword-vs-identifier exactness is
	// decided inside one Matcher, per match.IdentifierRule.
	for idName, idKind := range b.identifiers {
		kws := map[string]token.Kind{}
		for _, kw := range b.keywords {
			if kw.identifier != idName {
				continue
			}
			if _, dup := kws[kw.spelling]; dup {
				errs = append(errs, fmt.Errorf("lexspec: keyword spelling %q declared twice", kw.spelling))
				continue
			}
			kws[kw.spelling] = kw.kind
		}
		trie.InsertRule(match.IdentifierRule(idName, idKind, b.idMatchFn[idName], kws))
	}

	for _, name := range b.ruleOrder {
		trie.InsertRule(match.Rule{Name: name, Conflicts: b.conflicts[name], Match: b.ruleMatch[name]})
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, joinErrors(errs)
	}

	ws := make(map[token.Kind]bool, len(b.whitespace))
	for k, v := range b.whitespace {
		ws[k] = v
	}
	return &Spec{trie: trie, whitespace: ws}, nil
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := fmt.Sprintf("lexspec: %d construction errors:", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
