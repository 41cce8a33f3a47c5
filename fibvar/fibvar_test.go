package fibvar

import (
	"errors"
	"testing"

	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/HegelXu/fibonacci-variant/plonkish/layout"
	"github.com/HegelXu/fibonacci-variant/plonkish/mock"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

const testK = 5 // 32 rows, enough for every length used here

func witnessed(t *testing.T, a, b, c uint64, n int) *Circuit {
	t.Helper()
	circuit, err := NewCircuit(
		plonkish.KnownUint64(a),
		plonkish.KnownUint64(b),
		plonkish.KnownUint64(c),
		n,
	)
	require.NoError(t, err)
	return circuit
}

func verify(t *testing.T, circuit *Circuit, public fr.Element) error {
	t.Helper()
	prover, err := mock.Run(circuit, testK, [][]fr.Element{{public}})
	require.NoError(t, err)
	return prover.Verify()
}

func elem(u uint64) fr.Element {
	var e fr.Element
	e.SetUint64(u)
	return e
}

func TestSequence(t *testing.T) {
	assert := require.New(t)

	seq := SequenceUint64(1, 2, 3, 6)
	want := []uint64{1, 2, 3, 8, 30, 264}
	assert.Len(seq, 6)
	for i, w := range want {
		e := elem(w)
		assert.True(seq[i].Equal(&e), "seq[%d]", i)
	}

	// (1+0)*1 = 1
	seq = SequenceUint64(0, 1, 1, 4)
	e := elem(1)
	assert.True(seq[3].Equal(&e))
}

func TestCircuitVerifies(t *testing.T) {
	assert := require.New(t)

	cases := []struct {
		a, b, c uint64
		n       int
		public  uint64
	}{
		{1, 2, 3, 4, 8},
		{1, 2, 3, 5, 30},
		{1, 2, 3, 6, 264},
		{0, 1, 1, 4, 1},
	}
	for _, tc := range cases {
		circuit := witnessed(t, tc.a, tc.b, tc.c, tc.n)
		assert.NoError(verify(t, circuit, elem(tc.public)), "n=%d", tc.n)
	}
}

func TestCircuitRejectsWrongPublicInput(t *testing.T) {
	assert := require.New(t)

	circuit := witnessed(t, 1, 2, 3, 5)
	err := verify(t, circuit, elem(29))
	assert.Error(err)

	var instErr *mock.InstanceError
	assert.True(errors.As(err, &instErr))
	want := elem(30)
	assert.True(instErr.Got.Equal(&want))
}

func TestCircuitRejectsTamperedRow(t *testing.T) {
	assert := require.New(t)

	circuit := witnessed(t, 1, 2, 3, 5)
	seq := SequenceUint64(1, 2, 3, 5)
	prover, err := mock.Run(circuit, testK, [][]fr.Element{{seq[4]}})
	assert.NoError(err)
	assert.NoError(prover.Verify())

	// row 1 is the second region; overwrite its d with a wrong value while
	// the selector stays active
	prover.OverrideAdvice(circuit.Config().D, 1, elem(31))
	err = prover.Verify()
	assert.Error(err)

	var gateErr *mock.GateError
	assert.True(errors.As(err, &gateErr))
	assert.Equal(1, gateErr.Row)
}

func TestShapeStability(t *testing.T) {
	assert := require.New(t)

	for _, n := range []int{4, 5, 10} {
		circuit := witnessed(t, 1, 2, 3, n)
		seq := SequenceUint64(1, 2, 3, n)

		proverFull, err := mock.Run(circuit, testK, [][]fr.Element{{seq[n-1]}})
		assert.NoError(err)

		shapeOnly := circuit.WithoutWitness()
		assert.False(shapeOnly.A.IsKnown())

		sys := plonkish.NewSystem()
		shapeOnly.Configure(sys)
		planner := layout.NewPlanner(sys, 1<<testK)
		assert.NoError(shapeOnly.Synthesize(planner))

		witnessedShape := proverFull.Shape()
		full, err := witnessedShape.ToBytes()
		assert.NoError(err)
		bare := planner.Shape()
		blank, err := bare.ToBytes()
		assert.NoError(err)
		assert.Equal(full, blank, "n=%d", n)

		// one region per derived term
		assert.Equal(n-3, planner.RowsUsed())
	}
}

func TestConfigureDeterminism(t *testing.T) {
	assert := require.New(t)

	c1 := Configure(plonkish.NewSystem())
	c2 := Configure(plonkish.NewSystem())
	assert.Equal(c1, c2)
}

func TestInvalidLength(t *testing.T) {
	assert := require.New(t)

	for _, n := range []int{-1, 0, 3} {
		_, err := NewCircuit(plonkish.KnownUint64(1), plonkish.KnownUint64(2), plonkish.KnownUint64(3), n)
		assert.True(errors.Is(err, ErrInvalidLength), "n=%d", n)
	}

	// n=4 is the minimum: one seed region, zero loop iterations
	circuit := witnessed(t, 1, 2, 3, 4)
	assert.NoError(verify(t, circuit, elem(8)))
}

func TestShapeOverflowAtSmallLayout(t *testing.T) {
	assert := require.New(t)

	circuit := witnessed(t, 1, 2, 3, 10)
	// 2^1 = 2 rows cannot hold 7 regions
	_, err := mock.Run(circuit, 1, [][]fr.Element{{elem(0)}})
	assert.True(errors.Is(err, plonkish.ErrShapeOverflow))
}

func TestRecurrenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("mock prover accepts seq[n-1] and rejects seq[n-1]+1", prop.ForAll(
		func(a, b, c uint64, n int) bool {
			circuit, err := NewCircuit(
				plonkish.KnownUint64(a),
				plonkish.KnownUint64(b),
				plonkish.KnownUint64(c),
				n,
			)
			if err != nil {
				return false
			}
			seq := SequenceUint64(a, b, c, n)
			good := seq[n-1]

			prover, err := mock.Run(circuit, testK, [][]fr.Element{{good}})
			if err != nil || prover.Verify() != nil {
				return false
			}

			var bad fr.Element
			one := elem(1)
			bad.Add(&good, &one)
			prover, err = mock.Run(circuit, testK, [][]fr.Element{{bad}})
			return err == nil && prover.Verify() != nil
		},
		gen.UInt64Range(0, 1<<32),
		gen.UInt64Range(0, 1<<32),
		gen.UInt64Range(0, 1<<32),
		gen.IntRange(4, 24),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
