package plonkish

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Value is a field element that may not be known yet. Shape-only synthesis
// (key generation) runs the exact same code path as witnessed synthesis with
// every Value unknown; arithmetic over an unknown operand yields an unknown
// result and never fails.
type Value struct {
	known bool
	v     fr.Element
}

// Known wraps a concrete field element.
func Known(v fr.Element) Value {
	return Value{known: true, v: v}
}

// KnownUint64 wraps a small integer witness.
func KnownUint64(u uint64) Value {
	var e fr.Element
	e.SetUint64(u)
	return Known(e)
}

// Unknown returns the placeholder value used during shape-only synthesis.
func Unknown() Value {
	return Value{}
}

// IsKnown reports whether the value carries a concrete element.
func (a Value) IsKnown() bool {
	return a.known
}

// Get returns the underlying element and whether it is known.
func (a Value) Get() (fr.Element, bool) {
	return a.v, a.known
}

// Add returns a+b, unknown if either operand is unknown.
func (a Value) Add(b Value) Value {
	if !a.known || !b.known {
		return Unknown()
	}
	var r fr.Element
	r.Add(&a.v, &b.v)
	return Known(r)
}

// Mul returns a*b, unknown if either operand is unknown.
func (a Value) Mul(b Value) Value {
	if !a.known || !b.known {
		return Unknown()
	}
	var r fr.Element
	r.Mul(&a.v, &b.v)
	return Known(r)
}

func (a Value) String() string {
	if !a.known {
		return "<unknown>"
	}
	return a.v.String()
}
