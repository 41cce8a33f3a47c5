// Package fibonaccivariant provides a plonkish arithmetization of the
// three-term multiplicative recurrence
//
//	seq[i] = (seq[i-1] + seq[i-3]) * seq[i-2]
//
// seeded by three private field elements. The circuit exposes a single
// public value, the last term of the sequence, and a mock prover checks
// the assembled rows against the gate, copy and instance constraints.
//
// The building blocks live in sub-packages:
//   - plonkish: columns, gates, regions and the layouter contract
//   - plonkish/layout: the single-pass floor planner and layout shapes
//   - plonkish/mock: the in-process constraint checker
//   - fibvar: the circuit itself
package fibonaccivariant

import "github.com/blang/semver/v4"

// Version of the module. Layout shapes serialized by plonkish/layout embed
// it and refuse blobs from a different major version.
var Version = semver.MustParse("0.1.0")
