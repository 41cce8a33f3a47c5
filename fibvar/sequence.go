package fibvar

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Sequence computes the reference sequence in the clear:
//
//	seq[0] = a, seq[1] = b, seq[2] = c
//	seq[i] = (seq[i-1] + seq[i-3]) * seq[i-2]   for i >= 3
//
// The formula matches the circuit gate exactly; the driver uses it to
// derive the expected public value. n must be at least 3.
func Sequence(a, b, c fr.Element, n int) []fr.Element {
	seq := make([]fr.Element, n)
	seq[0], seq[1], seq[2] = a, b, c
	for i := 3; i < n; i++ {
		seq[i].Add(&seq[i-1], &seq[i-3])
		seq[i].Mul(&seq[i], &seq[i-2])
	}
	return seq
}

// SequenceUint64 is Sequence over small integer seeds.
func SequenceUint64(a, b, c uint64, n int) []fr.Element {
	var ea, eb, ec fr.Element
	ea.SetUint64(a)
	eb.SetUint64(b)
	ec.SetUint64(c)
	return Sequence(ea, eb, ec, n)
}
