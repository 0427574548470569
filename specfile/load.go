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
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/declex/declex/internal/collections"
	"github.com/declex/declex/lexspec"
)

// Load discovers every file under fsys matching any of patterns (doublestar
// globs, e.g. "tokens/*.spec.yaml"), parses each as a document, and merges
// them in sorted path order into one lexspec.Builder, resolving every
// ruleRef against reg. Duplicate literal/keyword declarations across
// merged files surface as the same construction-time error a single
// lexspec.Builder would report for declaring them twice in one file,
// since all declarations replay against the same Builder.
//
// Load itself never touches the tokenizer hot path; it runs once at
// startup, before any input is tokenized.
func Load(fsys fs.FS, reg *Registry, patterns ...string) (*lexspec.Builder, error) {
	paths, err := discover(fsys, patterns)
	if err != nil {
		return nil, err
	}

	b := lexspec.NewBuilder()
	var errs []error
	for _, path := range paths {
		if err := loadOne(fsys, path, reg, b); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, joinLoadErrors(errs)
	}
	return b, nil
}

func discover(fsys fs.FS, patterns []string) ([]string, error) {
	seen := collections.Set[string]{}
	var paths []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("specfile: invalid glob pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("specfile: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen.Contains(m) {
				seen.Add(m)
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func loadOne(fsys fs.FS, path string, reg *Registry, b *lexspec.Builder) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("specfile: reading %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("specfile: parsing %s: %w", path, err)
	}

	for _, decl := range doc.Tokens {
		if err := decl.applyTo(b, reg, path); err != nil {
			return err
		}
	}
	return nil
}

func joinLoadErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := fmt.Sprintf("specfile: %d files failed to load:", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
