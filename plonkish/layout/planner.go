// Package layout places circuit regions onto physical rows and captures the
// resulting table. The planner is single-pass: regions claim rows in
// synthesis order and are never revisited, which keeps the layout a pure
// function of the circuit's layout calls, independent of witness values.
package layout

import (
	"fmt"

	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/bits-and-blooms/bitset"
)

// MinRows returns the number of usable rows a layout must provide for a
// sequence of length n: one region per derived term plus the seed region.
func MinRows(n int) int {
	return n - 2
}

// Planner is a single-pass floor planner over a fixed number of rows. It
// implements plonkish.Layouter and records everything a checker or a setup
// needs: the advice table, selector activations, copy constraints, instance
// bindings and the value-independent Shape.
type Planner struct {
	sys    *plonkish.System
	nbRows int
	cursor int

	advice    [][]plonkish.Value
	selectors []*bitset.BitSet

	regions   []RegionShape
	copies    [][2]plonkish.Cell
	instances []InstanceBinding
}

// NewPlanner builds a planner for a configured system with nbRows usable
// rows.
func NewPlanner(sys *plonkish.System, nbRows int) *Planner {
	advice := make([][]plonkish.Value, sys.NbAdvice())
	for i := range advice {
		advice[i] = make([]plonkish.Value, nbRows)
	}
	selectors := make([]*bitset.BitSet, sys.NbSelectors())
	for i := range selectors {
		selectors[i] = bitset.New(uint(nbRows))
	}
	return &Planner{
		sys:       sys,
		nbRows:    nbRows,
		advice:    advice,
		selectors: selectors,
	}
}

// AssignRegion acquires the rows starting at the current cursor, runs fn,
// and commits the rows the region used.
func (p *Planner) AssignRegion(name string, fn func(plonkish.Region) error) error {
	r := &region{p: p, start: p.cursor}
	if err := fn(r); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	p.regions = append(p.regions, RegionShape{
		Name:      name,
		Start:     r.start,
		Rows:      r.used,
		Cells:     r.cells,
		Selectors: r.sels,
	})
	p.cursor = r.start + r.used
	return nil
}

// ConstrainInstance binds an assigned cell to a public instance slot.
func (p *Planner) ConstrainInstance(c plonkish.Cell, col plonkish.Column, row int) error {
	if col.Kind != plonkish.Instance {
		return fmt.Errorf("layout: cannot constrain instance against %s", col)
	}
	if !p.sys.EqualityEnabled(c.Column) {
		return fmt.Errorf("%w: %s", plonkish.ErrMissingEquality, c.Column)
	}
	if !p.sys.EqualityEnabled(col) {
		return fmt.Errorf("%w: %s", plonkish.ErrMissingEquality, col)
	}
	p.instances = append(p.instances, InstanceBinding{Cell: c, Column: col, Row: row})
	return nil
}

// AdviceValue returns the value assigned to an advice cell.
func (p *Planner) AdviceValue(col plonkish.Column, row int) plonkish.Value {
	return p.advice[col.Index][row]
}

// SetAdvice overwrites an advice cell. It exists for fault injection in
// tests; regular synthesis never mutates an assigned cell.
func (p *Planner) SetAdvice(col plonkish.Column, row int, v plonkish.Value) {
	p.advice[col.Index][row] = v
}

// SelectorRows returns the rows at which the selector is active.
func (p *Planner) SelectorRows(s plonkish.Selector) *bitset.BitSet {
	return p.selectors[s.Index]
}

// Copies returns the recorded equality constraints.
func (p *Planner) Copies() [][2]plonkish.Cell {
	return p.copies
}

// Instances returns the recorded public bindings.
func (p *Planner) Instances() []InstanceBinding {
	return p.instances
}

// RowsUsed returns the number of rows claimed so far.
func (p *Planner) RowsUsed() int {
	return p.cursor
}

// NbRows returns the planner capacity.
func (p *Planner) NbRows() int {
	return p.nbRows
}

// region implements plonkish.Region on top of the planner's row cursor.
type region struct {
	p     *Planner
	start int
	used  int

	cells []plonkish.Cell
	sels  []SelectorUse
}

func (r *region) row(offset int) (int, error) {
	row := r.start + offset
	if row >= r.p.nbRows {
		return 0, fmt.Errorf("%w: need row %d, have %d", plonkish.ErrShapeOverflow, row, r.p.nbRows)
	}
	if offset+1 > r.used {
		r.used = offset + 1
	}
	return row, nil
}

func (r *region) EnableSelector(s plonkish.Selector, offset int) error {
	row, err := r.row(offset)
	if err != nil {
		return err
	}
	r.p.selectors[s.Index].Set(uint(row))
	r.sels = append(r.sels, SelectorUse{Selector: s.Index, Row: row})
	return nil
}

func (r *region) AssignAdvice(name string, col plonkish.Column, offset int, v plonkish.Value) (plonkish.AssignedCell, error) {
	if col.Kind != plonkish.Advice {
		return plonkish.AssignedCell{}, fmt.Errorf("layout: cannot assign advice into %s", col)
	}
	row, err := r.row(offset)
	if err != nil {
		return plonkish.AssignedCell{}, err
	}
	cell := plonkish.Cell{Column: col, Row: row}
	r.p.advice[col.Index][row] = v
	r.cells = append(r.cells, cell)
	return plonkish.NewAssignedCell(cell, v), nil
}

func (r *region) CopyAdvice(name string, from plonkish.AssignedCell, col plonkish.Column, offset int) (plonkish.AssignedCell, error) {
	if !r.p.sys.EqualityEnabled(from.Cell().Column) {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: %s", plonkish.ErrMissingEquality, from.Cell().Column)
	}
	if !r.p.sys.EqualityEnabled(col) {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: %s", plonkish.ErrMissingEquality, col)
	}
	to, err := r.AssignAdvice(name, col, offset, from.Value())
	if err != nil {
		return plonkish.AssignedCell{}, err
	}
	r.p.copies = append(r.p.copies, [2]plonkish.Cell{from.Cell(), to.Cell()})
	return to, nil
}
