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

// Package token defines the identity and byte-level representation of
// tokens produced by the lexer and consumed by the grammar runtime. A Kind
// is a small integer tag handed out once at specification time; a Spelling
// is a non-owning view into the input buffer that produced it.
package token

import "fmt"

// Kind identifies a class of token. Kind values are created once, at token
// specification time, and compared by value for the lifetime of the
// program. The zero Kind is never handed out by a Builder; it is reserved
// so an accidentally-uninitialized Kind is easy to spot.
type Kind struct {
	id   int
	name string
}

// id -1 and -2 are reserved so they never collide with Builder-assigned ids,
// which start at 1.
const (
	errorID = -1
	eofID   = -2
)

var (
	// Error is the kind of a token covering input that no literal or rule
	// recognized: the run a rule reported as an error, or a single byte when
	// nothing matched at all. The tokenizer advances past it and surfaces
	// the skipped span as this kind.
	Error = Kind{id: errorID, name: "<error>"}

	// EOF is the kind of the sentinel token returned once the tokenizer has
	// consumed all input.
	EOF = Kind{id: eofID, name: "<eof>"}
)

// String returns the display name given to this kind at declaration time.
func (k Kind) String() string {
	if k.name == "" {
		return "<unset>"
	}
	return k.name
}

// IsZero reports whether k is the zero Kind, i.e. was never assigned by a
// Builder nor is one of the two reserved kinds.
func (k Kind) IsZero() bool { return k == Kind{} }

// IsSpecial reports whether k is one of the two reserved kinds (Error, EOF).
func (k Kind) IsSpecial() bool { return k.id == errorID || k.id == eofID }

// newKind is used only by the token specification builders in lexspec; end
// users never construct a Kind directly.
func newKind(id int, name string) Kind {
	if id == errorID || id == eofID {
		panic(fmt.Sprintf("token: id %d is reserved", id))
	}
	return Kind{id: id, name: name}
}

// NewKind is the construction-time hook used by specification builders
// (lexspec.Builder and others outside this module) to mint a fresh Kind.
// It is exported so alternative builders can be written without reaching
// into this package's internals, but end users building a grammar should go
// through a Builder rather than calling this directly.
func NewKind(id int, name string) Kind { return newKind(id, name) }

// ID returns the integer tag underlying k. Two kinds are equal iff their IDs
// are equal.
func (k Kind) ID() int { return k.id }
