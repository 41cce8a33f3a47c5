package plonkish

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func declare(sys *System) (Column, Column, Selector) {
	a := sys.AdviceColumn()
	i := sys.InstanceColumn()
	s := sys.Selector()
	sys.EnableEquality(a)
	sys.CreateGate("identity", s, []Column{a}, func(in []fr.Element) fr.Element {
		return in[0]
	})
	return a, i, s
}

func TestSystemDeterminism(t *testing.T) {
	assert := require.New(t)

	s1 := NewSystem()
	s2 := NewSystem()
	a1, i1, sel1 := declare(s1)
	a2, i2, sel2 := declare(s2)

	assert.Equal(a1, a2)
	assert.Equal(i1, i2)
	assert.Equal(sel1, sel2)
	assert.Equal(s1.NbAdvice(), s2.NbAdvice())
	assert.Equal(s1.NbInstance(), s2.NbInstance())
	assert.Equal(s1.NbSelectors(), s2.NbSelectors())
	assert.Len(s1.Gates(), 1)
	assert.Equal(s1.Gates()[0].Name, s2.Gates()[0].Name)
	assert.Equal(s1.Gates()[0].Queries, s2.Gates()[0].Queries)
	assert.Equal(s1.Gates()[0].Selector, s2.Gates()[0].Selector)
}

func TestSystemColumnAllocation(t *testing.T) {
	assert := require.New(t)

	sys := NewSystem()
	a := sys.AdviceColumn()
	b := sys.AdviceColumn()
	i := sys.InstanceColumn()

	assert.Equal(Column{Kind: Advice, Index: 0}, a)
	assert.Equal(Column{Kind: Advice, Index: 1}, b)
	assert.Equal(Column{Kind: Instance, Index: 0}, i)

	sys.EnableEquality(a)
	assert.True(sys.EqualityEnabled(a))
	assert.False(sys.EqualityEnabled(b))
	assert.False(sys.EqualityEnabled(i))
}
