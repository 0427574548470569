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

package lexspec

import (
	"github.com/declex/declex/match"
	"github.com/declex/declex/token"
)

// Spec is the immutable result of Builder.Build: a match engine plus the
// set of kinds the lexer should treat as whitespace. A Spec is safe for
// concurrent use by multiple lexer.Tokenizer instances.
type Spec struct {
	trie       *match.Trie
	whitespace map[token.Kind]bool
}

// Trie returns the match engine built from the spec's declarations.
func (s *Spec) Trie() *match.Trie { return s.trie }

// IsWhitespace reports whether kind was declared via Builder.Whitespace.
func (s *Spec) IsWhitespace(kind token.Kind) bool { return s.whitespace[kind] }
