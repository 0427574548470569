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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declex/declex/operator"
	"github.com/declex/declex/token"
)

// buildArithOperatorGrammar mounts a tiny "number + number ..." operator
// hierarchy as the sole production of a Grammar, exercising MountOperator's
// translation of operator.Diagnostic into grammar.Diagnostic.
func buildArithOperatorGrammar(t *testing.T, f *calcFixture) (*Grammar, func(diags *[]Diagnostic) *Visitor) {
	t.Helper()

	number := operator.AtomToken(f.number)
	addSub := operator.BinOpLeft(operator.TokenOperator(f.plus), number, func(lhs, op, rhs any) any {
		// After the first '+', lhs is the int this reducer already returned.
		lhsN, folded := lhs.(int)
		if !folded {
			n, err := strconv.Atoi(lhs.(token.Token).Spelling.String())
			require.NoError(t, err)
			lhsN = n
		}
		rhsTok := rhs.(token.Token)
		rhsN, err := strconv.Atoi(rhsTok.Spelling.String())
		require.NoError(t, err)
		return lhsN + rhsN
	})
	hierarchy := operator.NewHierarchy("sum", addSub)

	b := NewBuilder().Start("sum").Production(MountOperator("sum", hierarchy))

	newVisitor := func(diags *[]Diagnostic) *Visitor {
		return NewVisitor().
			OnError(UnexpectedToken, func(d Diagnostic) { *diags = append(*diags, d) }).
			OnError(ExhaustedTokenChoice, func(d Diagnostic) { *diags = append(*diags, d) }).
			OnError(ExhaustedChoice, func(d Diagnostic) { *diags = append(*diags, d) }).
			OnError(IllegalOperatorChain, func(d Diagnostic) { *diags = append(*diags, d) }).
			Build()
	}

	var bootstrap []Diagnostic
	g, err := b.Build(newVisitor(&bootstrap))
	require.NoError(t, err)
	return g, newVisitor
}

func TestMountOperatorParsesSuccessfully(t *testing.T) {
	f := buildCalcFixture(t)
	g, newVisitor := buildArithOperatorGrammar(t, f)
	var diags []Diagnostic
	res := g.Parse(f.tokenizer("1 + 2 + 3"), newVisitor(&diags))
	require.True(t, res.IsSuccess())
	assert.Equal(t, 6, res.Value())
	assert.Empty(t, diags)
}

func TestMountOperatorTranslatesDiagnostic(t *testing.T) {
	f := buildCalcFixture(t)
	g, newVisitor := buildArithOperatorGrammar(t, f)
	var diags []Diagnostic
	res := g.Parse(f.tokenizer("1 +"), newVisitor(&diags))
	assert.False(t, res.IsSuccess())
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedToken, diags[0].Kind)
	assert.Equal(t, "sum", diags[0].Production)
	assert.Equal(t, f.number, diags[0].Expected)
	assert.True(t, diags[0].Got.IsEOF())
}

func TestMountOperatorContributesNoTagOrRefRequirement(t *testing.T) {
	f := buildCalcFixture(t)
	hierarchy := operator.NewHierarchy("atom", operator.AtomToken(f.number))
	b := NewBuilder().Start("atom").Production(MountOperator("atom", hierarchy))
	visitor := NewVisitor().
		OnError(UnexpectedToken, func(Diagnostic) {}).
		OnError(ExhaustedTokenChoice, func(Diagnostic) {}).
		OnError(ExhaustedChoice, func(Diagnostic) {}).
		OnError(IllegalOperatorChain, func(Diagnostic) {}).
		Build()
	_, err := b.Build(visitor)
	require.NoError(t, err)
}
