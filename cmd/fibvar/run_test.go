package main

import (
	"errors"
	"testing"

	"github.com/HegelXu/fibonacci-variant/fibvar"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsShortLength(t *testing.T) {
	assert := require.New(t)

	old := fLength
	defer func() { fLength = old }()

	for _, n := range []int{-1, 0, 2, 3} {
		fLength = n
		err := run(runCmd, nil)
		assert.True(errors.Is(err, fibvar.ErrInvalidLength), "n=%d", n)
	}
}

func TestRunDefaultScenario(t *testing.T) {
	assert := require.New(t)

	oldN, oldK := fLength, fK
	defer func() { fLength, fK = oldN, oldK }()

	fLength, fK = 10, 8
	assert.NoError(run(runCmd, nil))
}
