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

package token

// Spelling is a non-owning view into the bytes of the input buffer that
// produced a token. The input buffer must outlive every Spelling derived
// from it; Spelling never copies or retains ownership of memory.
type Spelling struct {
	data []byte
}

// NewSpelling wraps data as a Spelling. data is not copied.
func NewSpelling(data []byte) Spelling { return Spelling{data: data} }

// Bytes returns the underlying byte view. Callers must not mutate the
// returned slice; doing so would corrupt the input buffer shared by every
// other token derived from it.
func (s Spelling) Bytes() []byte { return s.data }

// String returns the spelling as a string, copying the bytes.
func (s Spelling) String() string { return string(s.data) }

// Len returns the number of bytes in the spelling.
func (s Spelling) Len() int { return len(s.data) }

// Equal reports whether two spellings have the same bytes.
func (s Spelling) Equal(other Spelling) bool {
	if len(s.data) != len(other.data) {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
