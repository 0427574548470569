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

import "github.com/declex/declex/token"

// IdentifierRule builds the composite identifier/keyword rule: idKind is
// reported unless the identifier's matched span is spelled exactly like one
// of the keywords (a keyword can never win on a strict prefix of a longer
// identifier, only on an exact-length match).
//
// idMatch reports how many leading bytes of data form a valid identifier (0
// if none); it is a length function, not a Matcher, because the composite
// never wants idMatch's own kind tagging — only its bump count.
func IdentifierRule(name string, idKind token.Kind, idMatch func(data []byte) int, keywords map[string]token.Kind) Rule {
	return Rule{
		Name: name,
		Match: func(data []byte) Result {
			n := idMatch(data)
			if n <= 0 {
				return Unmatched()
			}
			if kwKind, ok := keywords[string(data[:n])]; ok {
				return SuccessResult(kwKind, n)
			}
			return SuccessResult(idKind, n)
		},
	}
}
