// Package mock runs a circuit through the floor planner and checks the
// resulting table the way a proving engine would: every gate must vanish at
// every selector-active row, every copy constraint must relate equal values,
// and every instance binding must match the supplied public inputs.
//
// Verification failures are returned as values, never raised during
// synthesis; a failing proof attempt is an outcome, not a bug.
package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/HegelXu/fibonacci-variant/logger"
	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/HegelXu/fibonacci-variant/plonkish/layout"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Prover holds a fully synthesized table and the public inputs it is checked
// against.
type Prover struct {
	sys      *plonkish.System
	planner  *layout.Planner
	instance [][]fr.Element
}

// Run configures the circuit, synthesizes it over 2^k rows and returns a
// prover over the assembled table. instance holds one value slice per
// instance column. Synthesis errors (shape overflow, missing equality
// capability) propagate unchanged.
func Run(c plonkish.Circuit, k uint, instance [][]fr.Element) (*Prover, error) {
	sys := plonkish.NewSystem()
	c.Configure(sys)
	if len(instance) != sys.NbInstance() {
		return nil, fmt.Errorf("mock: got %d instance columns, circuit declares %d", len(instance), sys.NbInstance())
	}
	planner := layout.NewPlanner(sys, 1<<k)
	if err := c.Synthesize(planner); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().
		Int("rows", planner.RowsUsed()).
		Int("capacity", planner.NbRows()).
		Int("copies", len(planner.Copies())).
		Msg("synthesized")

	return &Prover{sys: sys, planner: planner, instance: instance}, nil
}

// OverrideAdvice overwrites one advice cell of the synthesized table. Fault
// injection hook for tests; a tampered cell under an active selector must
// make Verify fail.
func (p *Prover) OverrideAdvice(col plonkish.Column, row int, v fr.Element) {
	p.planner.SetAdvice(col, row, plonkish.Known(v))
}

// Shape returns the layout of the synthesized circuit.
func (p *Prover) Shape() layout.Shape {
	return p.planner.Shape()
}

// Verify checks the table and returns all failures joined, or nil when the
// circuit is satisfied.
func (p *Prover) Verify() error {
	start := time.Now()
	var failures []error

	gates := p.sys.Gates()
	for i := range gates {
		g := &gates[i]
		rows := p.planner.SelectorRows(g.Selector)
		in := make([]fr.Element, len(g.Queries))
		for row, ok := rows.NextSet(0); ok; row, ok = rows.NextSet(row + 1) {
			bad := false
			for j, q := range g.Queries {
				v, err := p.cellValue(plonkish.Cell{Column: q, Row: int(row)})
				if err != nil {
					failures = append(failures, err)
					bad = true
					break
				}
				in[j] = v
			}
			if bad {
				continue
			}
			if out := g.Evaluate(in); !out.IsZero() {
				failures = append(failures, &GateError{Gate: g.Name, Row: int(row), Value: out})
			}
		}
	}

	for _, cp := range p.planner.Copies() {
		a, errA := p.cellValue(cp[0])
		b, errB := p.cellValue(cp[1])
		if errA != nil {
			failures = append(failures, errA)
			continue
		}
		if errB != nil {
			failures = append(failures, errB)
			continue
		}
		if !a.Equal(&b) {
			failures = append(failures, &CopyError{A: cp[0], B: cp[1]})
		}
	}

	for _, ib := range p.planner.Instances() {
		got, err := p.cellValue(ib.Cell)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		col := p.instance[ib.Column.Index]
		if ib.Row >= len(col) {
			failures = append(failures, fmt.Errorf("mock: no public input at %s slot %d", ib.Column, ib.Row))
			continue
		}
		if !got.Equal(&col[ib.Row]) {
			failures = append(failures, &InstanceError{Cell: ib.Cell, Row: ib.Row, Got: got, Want: col[ib.Row]})
		}
	}

	log := logger.Logger()
	log.Debug().
		Dur("took", time.Since(start)).
		Int("failures", len(failures)).
		Msg("verified")

	return errors.Join(failures...)
}

func (p *Prover) cellValue(c plonkish.Cell) (fr.Element, error) {
	v, known := p.planner.AdviceValue(c.Column, c.Row).Get()
	if !known {
		return fr.Element{}, fmt.Errorf("mock: cell %s has no known value", c)
	}
	return v, nil
}
