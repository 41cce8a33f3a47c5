// Package plonkish declares the wire model of a plonkish circuit: advice and
// instance columns, per-row selectors, polynomial gates, and the region and
// layouter contracts a circuit synthesizes through.
//
// A System is built once, before any witness exists, and is shared by every
// instance of a circuit. Witness values flow in later, during synthesis,
// through a Layouter; cells assigned there are referenced by handle and
// related by equality constraints, never re-assigned.
//
// Field arithmetic is fixed to the BN254 scalar field
// (github.com/consensys/gnark-crypto/ecc/bn254/fr).
package plonkish
