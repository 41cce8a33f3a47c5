package mock

import (
	"fmt"

	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// GateError reports a gate polynomial that does not vanish at a row where
// its selector is active.
type GateError struct {
	Gate  string
	Row   int
	Value fr.Element
}

func (e *GateError) Error() string {
	return fmt.Sprintf("gate %q not satisfied at row %d, evaluates to %s", e.Gate, e.Row, e.Value.String())
}

// CopyError reports two equality-bound cells holding different values.
type CopyError struct {
	A, B plonkish.Cell
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy constraint violated between %s and %s", e.A, e.B)
}

// InstanceError reports an exposed cell that differs from the supplied
// public input.
type InstanceError struct {
	Cell plonkish.Cell
	Row  int
	Got  fr.Element
	Want fr.Element
}

func (e *InstanceError) Error() string {
	return fmt.Sprintf("public input mismatch at slot %d: cell %s holds %s, instance holds %s",
		e.Row, e.Cell, e.Got.String(), e.Want.String())
}
