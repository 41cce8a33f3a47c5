package plonkish

import "errors"

var (
	// ErrShapeOverflow is returned when the layout has fewer rows than the
	// regions a synthesis needs.
	ErrShapeOverflow = errors.New("plonkish: layout rows exhausted")

	// ErrMissingEquality is returned when an equality binding involves a
	// column that was not equality-enabled at configuration time.
	ErrMissingEquality = errors.New("plonkish: column not equality-enabled")
)

// Region is a contiguous batch of row assignments, produced atomically.
// Offsets are relative to the region start; the layouter places the region
// on physical rows. Every column a gate reads at an active row must be
// assigned or copied before the region completes.
type Region interface {
	// EnableSelector turns the selector on at the given offset.
	EnableSelector(s Selector, offset int) error

	// AssignAdvice places a value in an advice column at the given offset
	// and returns a handle to the new cell.
	AssignAdvice(name string, col Column, offset int, v Value) (AssignedCell, error)

	// CopyAdvice assigns the value held by an existing handle into an advice
	// column at the given offset and records an equality constraint between
	// the two cells. Both columns must be equality-enabled.
	CopyAdvice(name string, from AssignedCell, col Column, offset int) (AssignedCell, error)
}

// Layouter places regions onto physical rows and records cross-region
// constraints. Implementations are supplied by the layout engine, not by
// circuits.
type Layouter interface {
	// AssignRegion acquires a fresh region, runs fn inside it, and commits
	// the rows it used. Errors from fn propagate unchanged apart from
	// region-name context.
	AssignRegion(name string, fn func(Region) error) error

	// ConstrainInstance binds an assigned cell to a slot of an instance
	// column, making its value a public claim.
	ConstrainInstance(c Cell, col Column, row int) error
}

// Circuit is implemented by circuit definitions. Configure declares columns
// and gates on the shared System; Synthesize assigns regions through the
// layouter. Synthesize must make the same layout calls whatever the witness
// values are, so that a shape-only instance yields the same layout as a
// witnessed one.
type Circuit interface {
	Configure(sys *System)
	Synthesize(l Layouter) error
}
