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

package specfile

import (
	"fmt"

	"github.com/declex/declex/lexspec"
)

// document is the YAML-serializable projection of a token specification: an
// ordered list of token declarations, each one of four kinds.
type document struct {
	Tokens []tokenDecl `yaml:"tokens"`
}

// tokenDecl is one entry of a document's tokens list. Which fields are
// meaningful depends on Kind; applyTo reports a construction-time error when
// a field the kind requires is missing, and ignores fields the kind does not
// use. A rule whose ruleRef names a Registry.RuleMatcher also ignores
// Whitespace, since Builder.RuleMatcher returns no single kind to mark.
type tokenDecl struct {
	Name          string   `yaml:"name"`
	Kind          string   `yaml:"kind"`
	Literal       string   `yaml:"literal,omitempty"`
	Whitespace    bool     `yaml:"whitespace,omitempty"`
	RuleRef       string   `yaml:"ruleRef,omitempty"`
	ConflictsWith []string `yaml:"conflictsWith,omitempty"`
	Identifier    string   `yaml:"identifier,omitempty"` // keyword only: name of the identifier rule it attaches to
}

const (
	kindLiteral    = "literal"
	kindRule       = "rule"
	kindIdentifier = "identifier"
	kindKeyword    = "keyword"
)

// applyTo replays d against b, resolving any ruleRef through reg. path is
// the originating file, used only to annotate errors.
func (d tokenDecl) applyTo(b *lexspec.Builder, reg *Registry, path string) error {
	if d.Name == "" {
		return fmt.Errorf("specfile: %s: token declaration with no name", path)
	}

	switch d.Kind {
	case kindLiteral:
		if d.Literal == "" {
			return fmt.Errorf("specfile: %s: literal %q has no literal spelling", path, d.Name)
		}
		k := b.Literal(d.Name, d.Literal)
		if d.Whitespace {
			b.Whitespace(k)
		}
		return nil

	case kindRule:
		if d.RuleRef == "" {
			return fmt.Errorf("specfile: %s: rule %q has no ruleRef", path, d.Name)
		}
		fn, err := reg.lookupLength(d.RuleRef)
		if err != nil {
			if m, matcherErr := reg.lookupMatcher(d.RuleRef); matcherErr == nil {
				b.RuleMatcher(d.Name, m, d.ConflictsWith...)
				return nil
			}
			return fmt.Errorf("specfile: %s: rule %q: %w", path, d.Name, err)
		}
		k := b.Rule(d.Name, fn, d.ConflictsWith...)
		if d.Whitespace {
			b.Whitespace(k)
		}
		return nil

	case kindIdentifier:
		if d.RuleRef == "" {
			return fmt.Errorf("specfile: %s: identifier %q has no ruleRef", path, d.Name)
		}
		fn, err := reg.lookupLength(d.RuleRef)
		if err != nil {
			return fmt.Errorf("specfile: %s: identifier %q: %w", path, d.Name, err)
		}
		b.Identifier(d.Name, fn)
		return nil

	case kindKeyword:
		if d.Identifier == "" {
			return fmt.Errorf("specfile: %s: keyword %q has no identifier", path, d.Name)
		}
		if d.Literal == "" {
			return fmt.Errorf("specfile: %s: keyword %q has no literal spelling", path, d.Name)
		}
		b.Keyword(d.Identifier, d.Name, d.Literal)
		return nil

	default:
		return fmt.Errorf("specfile: %s: token %q has unknown kind %q (want one of %s/%s/%s/%s)",
			path, d.Name, d.Kind, kindLiteral, kindRule, kindIdentifier, kindKeyword)
	}
}
