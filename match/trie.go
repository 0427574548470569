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

package match

import (
	"fmt"

	"github.com/declex/declex/token"
)

// node is a single character-indexed trie node. A node with terminal==true
// marks the end of a literal token's spelling; recheck holds the rules that
// must be re-tried at this node because they conflict with that literal.
type node struct {
	children map[byte]*node
	terminal bool
	kind     token.Kind
	recheck  []Rule
}

func newNode() *node { return &node{children: map[byte]*node{}} }

// Trie is the literal-trie-plus-rules dispatcher: literal spellings are
// indexed byte by byte, and rule tokens are tried at the root (or rechecked
// against a literal's terminal node when they conflict with it). It is
// built once at specification time and is safe for concurrent read-only
// use thereafter (construction is not safe to run concurrently with reads).
type Trie struct {
	root      *node
	rootRules []Rule
}

// NewTrie returns an empty trie.
func NewTrie() *Trie { return &Trie{root: newNode()} }

// InsertLiteral inserts a fixed-spelling token into the trie. Returns an
// error if the literal is empty or was already inserted (duplicate literal
// is a construction-time error).
func (t *Trie) InsertLiteral(kind token.Kind, literal string) error {
	if literal == "" {
		return fmt.Errorf("match: literal token %s has empty spelling", kind)
	}
	n := t.root
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	if n.terminal {
		return fmt.Errorf("match: duplicate literal %q (already %s, now %s)", literal, n.kind, kind)
	}
	n.terminal = true
	n.kind = kind
	return nil
}

// InsertRule registers a rule token. It is always added to the root-level
// rule list (tried, in declaration order, when no literal prefix matches at
// all) and, for every literal spelling in rule.Conflicts that has already
// been inserted, attached as a recheck at that literal's terminal node.
//
// Rules must be inserted after every literal they declare a conflict with
// (InsertRule looks the literal up in the trie as it stands at the moment
// it's called); lexspec.Builder enforces this ordering.
func (t *Trie) InsertRule(rule Rule) {
	t.rootRules = append(t.rootRules, rule)
	for _, lit := range rule.Conflicts {
		n := t.root
		ok := true
		for i := 0; i < len(lit) && ok; i++ {
			n, ok = n.children[lit[i]]
		}
		if ok && n != nil && n.terminal {
			n.recheck = append(n.recheck, rule)
		}
	}
}

// Match runs the longest-literal-match-with-rule-recheck algorithm against
// data, which must begin at the cursor being matched (Match never looks
// behind data[0]).
func (t *Trie) Match(data []byte) Result {
	if len(data) == 0 {
		return EOFResult()
	}

	cur := t.root
	length := 0
	var lastTerm *node
	lastLen := 0
	for length < len(data) {
		child, ok := cur.children[data[length]]
		if !ok {
			break
		}
		cur = child
		length++
		if cur.terminal {
			lastTerm = cur
			lastLen = length
		}
	}

	if lastTerm != nil {
		for _, rule := range lastTerm.recheck {
			res := rule.Match(data)
			if res.IsSuccess() && res.Bump() >= lastLen {
				// Tie-breaking on equal length favors the rule; see
				// DESIGN.md's Open Question resolutions.
				return res
			}
		}
		return SuccessResult(lastTerm.kind, lastLen)
	}

	var fallbackErr Result
	haveFallback := false
	for _, rule := range t.rootRules {
		res := rule.Match(data)
		if res.IsSuccess() {
			return res
		}
		if res.IsError() && !haveFallback {
			fallbackErr, haveFallback = res, true
		}
	}
	if haveFallback {
		return fallbackErr
	}
	return ErrorResult(1)
}
