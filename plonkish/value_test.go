package plonkish

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestValueArithmetic(t *testing.T) {
	assert := require.New(t)

	a := KnownUint64(7)
	b := KnownUint64(5)

	sum, ok := a.Add(b).Get()
	assert.True(ok)
	var want fr.Element
	want.SetUint64(12)
	assert.True(sum.Equal(&want))

	prod, ok := a.Mul(b).Get()
	assert.True(ok)
	want.SetUint64(35)
	assert.True(prod.Equal(&want))
}

func TestValueUnknownPropagation(t *testing.T) {
	assert := require.New(t)

	known := KnownUint64(42)
	unknown := Unknown()

	assert.False(unknown.IsKnown())
	assert.False(known.Add(unknown).IsKnown())
	assert.False(unknown.Add(known).IsKnown())
	assert.False(known.Mul(unknown).IsKnown())
	assert.False(unknown.Mul(unknown).IsKnown())
	assert.True(known.Add(known).IsKnown())

	_, ok := unknown.Get()
	assert.False(ok)
}
