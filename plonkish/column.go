package plonkish

import "fmt"

// ColumnKind distinguishes the wire categories of the circuit table.
type ColumnKind uint8

const (
	// Advice columns hold private, prover-only values.
	Advice ColumnKind = iota + 1
	// Instance columns hold values visible to the verifier.
	Instance
)

func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	default:
		return "unknown"
	}
}

// Column identifies a wire column of the table. Columns are allocated by a
// System before any witness exists and are compared by value.
type Column struct {
	Kind  ColumnKind `cbor:"kind"`
	Index int        `cbor:"index"`
}

func (c Column) String() string {
	return fmt.Sprintf("%s[%d]", c.Kind, c.Index)
}

// Selector is a per-row boolean flag gating whether a gate constrains that
// row. Selector = 1 at a row is necessary and sufficient for the gate to
// apply there.
type Selector struct {
	Index int `cbor:"index"`
}

// Cell addresses one (column, row) slot of the table.
type Cell struct {
	Column Column `cbor:"column"`
	Row    int    `cbor:"row"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%s@%d", c.Column, c.Row)
}

// AssignedCell is the handle returned by a region assignment: the cell
// address plus the (possibly unknown) value placed there. Later rows reuse
// the value through equality bindings on the handle instead of re-assigning
// the raw witness.
type AssignedCell struct {
	cell  Cell
	value Value
}

// NewAssignedCell builds a handle; used by Layouter implementations.
func NewAssignedCell(cell Cell, value Value) AssignedCell {
	return AssignedCell{cell: cell, value: value}
}

// Cell returns the table address of the assignment.
func (a AssignedCell) Cell() Cell {
	return a.cell
}

// Value returns the value placed in the cell.
func (a AssignedCell) Value() Value {
	return a.value
}
