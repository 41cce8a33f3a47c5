package plonkish

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// GateEval evaluates a gate polynomial over the current-row values of the
// gate's queried columns, in query order. The gate is satisfied at a row iff
// the result is zero.
type GateEval func(in []fr.Element) fr.Element

// Gate is a polynomial relation that must vanish wherever its selector is
// active. Rows where the selector is off are left unconstrained by the gate.
type Gate struct {
	Name     string
	Selector Selector
	Queries  []Column

	eval GateEval
}

// Evaluate runs the gate polynomial over one row of queried values.
// len(in) must equal len(g.Queries).
func (g *Gate) Evaluate(in []fr.Element) fr.Element {
	return g.eval(in)
}
