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

package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSlice(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	even := FilterSlice(input, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestSetAddContains(t *testing.T) {
	s := SetOf("a", "b")
	s.Add("c")
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("z"))
}

func TestSetDiff(t *testing.T) {
	want := SetOf("sum", "product", "unary")
	have := SetOf("sum", "product")
	missing := want.Diff(have)
	assert.Equal(t, []string{"unary"}, missing.Values())
}

func TestSetSortedValues(t *testing.T) {
	s := SetOf("c", "a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, s.SortedValues(func(l, r string) int {
		if l < r {
			return -1
		}
		if l > r {
			return 1
		}
		return 0
	}))
}

func TestToSetDeduplicates(t *testing.T) {
	s := ToSet([]string{"a", "b", "a", "c"})
	assert.Len(t, s, 3)
}
