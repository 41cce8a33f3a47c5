// Package fibvar arithmetizes the Fibonacci-variant recurrence
//
//	seq[i] = (seq[i-1] + seq[i-3]) * seq[i-2]
//
// as a plonkish circuit. Three private seeds enter the first row, every
// later row equality-binds the previous row's outputs as its inputs, and
// the last derived term is exposed as the single public value.
package fibvar

import (
	"errors"
	"fmt"

	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInvalidLength is returned for sequence lengths below 4, the minimum
// producing one derived term beyond the three seeds.
var ErrInvalidLength = errors.New("fibvar: sequence length must be at least 4")

// Config is the circuit's column layout: four advice columns holding one
// recurrence window per row, the public instance column, and the selector
// gating the mul-add gate.
type Config struct {
	A, B, C, D plonkish.Column
	I          plonkish.Column
	S          plonkish.Selector
}

// Configure declares the columns and the single gate
//
//	s * ((a + c) * b - d) == 0
//
// on the system. The same relation serves the seed row and every derived
// row. Equality is enabled on a, b, c, d and the instance column; cross-row
// bindings and the public exposure depend on it.
func Configure(sys *plonkish.System) Config {
	a := sys.AdviceColumn()
	b := sys.AdviceColumn()
	c := sys.AdviceColumn()
	d := sys.AdviceColumn()
	i := sys.InstanceColumn()
	s := sys.Selector()

	for _, col := range []plonkish.Column{a, b, c, d, i} {
		sys.EnableEquality(col)
	}

	sys.CreateGate("mul add gate", s, []plonkish.Column{a, b, c, d}, func(in []fr.Element) fr.Element {
		var acc fr.Element
		acc.Add(&in[0], &in[2])
		acc.Mul(&acc, &in[1])
		acc.Sub(&acc, &in[3])
		return acc
	})

	return Config{A: a, B: b, C: c, D: d, I: i, S: s}
}

// Term is the handle for one recurrence term: the cell that produced the
// value. Rows that consume the term bind to this cell instead of
// re-assigning the raw value, so the verifier sees an explicit chain from
// the seeds to the final term.
type Term struct {
	cell plonkish.AssignedCell
}

// Cell returns the table address holding the term.
func (t Term) Cell() plonkish.Cell {
	return t.cell.Cell()
}

// Chip assigns recurrence rows through a layouter.
type Chip struct {
	cfg Config
}

// NewChip wraps a configuration.
func NewChip(cfg Config) *Chip {
	return &Chip{cfg: cfg}
}

// LoadFirstRow assigns the seed row: the three witnesses go into a, b, c,
// the derived fourth term (a+c)*b into d, all under one selector
// activation. It returns handles for all four terms.
func (ch *Chip) LoadFirstRow(l plonkish.Layouter, a, b, c plonkish.Value) (ta, tb, tc, td Term, err error) {
	err = l.AssignRegion("first row", func(r plonkish.Region) error {
		if err := r.EnableSelector(ch.cfg.S, 0); err != nil {
			return err
		}
		aCell, err := r.AssignAdvice("a", ch.cfg.A, 0, a)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdvice("b", ch.cfg.B, 0, b)
		if err != nil {
			return err
		}
		cCell, err := r.AssignAdvice("c", ch.cfg.C, 0, c)
		if err != nil {
			return err
		}
		dCell, err := r.AssignAdvice("d", ch.cfg.D, 0, a.Add(c).Mul(b))
		if err != nil {
			return err
		}
		ta, tb, tc, td = Term{aCell}, Term{bCell}, Term{cCell}, Term{dCell}
		return nil
	})
	return
}

// LoadRow assigns one derived row. The previous region's b, c and d terms
// are equality-bound into this row's a, b and c columns, and the new term
// (a+c)*b is assigned into d. Binding instead of re-assigning keeps every
// row's inputs provably identical to an earlier row's outputs.
func (ch *Chip) LoadRow(l plonkish.Layouter, b, c, d Term) (Term, error) {
	var out Term
	err := l.AssignRegion("row", func(r plonkish.Region) error {
		if err := r.EnableSelector(ch.cfg.S, 0); err != nil {
			return err
		}
		aCell, err := r.CopyAdvice("a", b.cell, ch.cfg.A, 0)
		if err != nil {
			return err
		}
		bCell, err := r.CopyAdvice("b", c.cell, ch.cfg.B, 0)
		if err != nil {
			return err
		}
		cCell, err := r.CopyAdvice("c", d.cell, ch.cfg.C, 0)
		if err != nil {
			return err
		}
		dv := aCell.Value().Add(cCell.Value()).Mul(bCell.Value())
		dCell, err := r.AssignAdvice("d", ch.cfg.D, 0, dv)
		if err != nil {
			return err
		}
		out = Term{dCell}
		return nil
	})
	return out, err
}

// ExposePublic constrains a term to equal the instance column at the given
// slot. This is the only path by which an internal value becomes a public
// claim.
func (ch *Chip) ExposePublic(l plonkish.Layouter, t Term, row int) error {
	return l.ConstrainInstance(t.Cell(), ch.cfg.I, row)
}

// Circuit owns the three seeds, each concrete or unknown, and the target
// sequence length N. One instance produces exactly one public output,
// seq[N-1], at instance slot 0.
type Circuit struct {
	A, B, C plonkish.Value
	N       int

	cfg Config
}

// NewCircuit builds a circuit instance. n < 4 is outside the recurrence's
// domain and is rejected here rather than given alternate semantics.
func NewCircuit(a, b, c plonkish.Value, n int) (*Circuit, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLength, n)
	}
	return &Circuit{A: a, B: b, C: c, N: n}, nil
}

// WithoutWitness returns the shape-only variant of the circuit: same length,
// all seeds unknown. Its layout is identical to the witnessed one, which is
// what key generation relies on.
func (c *Circuit) WithoutWitness() *Circuit {
	return &Circuit{
		A: plonkish.Unknown(),
		B: plonkish.Unknown(),
		C: plonkish.Unknown(),
		N: c.N,
	}
}

// Configure implements plonkish.Circuit.
func (c *Circuit) Configure(sys *plonkish.System) {
	c.cfg = Configure(sys)
}

// Config returns the layout declared by Configure.
func (c *Circuit) Config() Config {
	return c.cfg
}

// Synthesize assigns the seed row, then one region per remaining derived
// term with the (b, c, d) window rotated through equality-bound handles,
// and finally exposes the last term. Control flow depends only on N, never
// on seed values.
func (c *Circuit) Synthesize(l plonkish.Layouter) error {
	if c.N < 4 {
		return fmt.Errorf("%w, got %d", ErrInvalidLength, c.N)
	}
	chip := NewChip(c.cfg)
	_, b, cc, d, err := chip.LoadFirstRow(l, c.A, c.B, c.C)
	if err != nil {
		return err
	}
	for i := 4; i < c.N; i++ {
		nd, err := chip.LoadRow(l, b, cc, d)
		if err != nil {
			return err
		}
		b, cc, d = cc, d, nd
	}
	return chip.ExposePublic(l, d, 0)
}
