package plonkish

// System is the configuration of a circuit: its columns, selectors, equality
// capabilities and gates. It is built once, independently of any witness, and
// is immutable for layout purposes afterwards; the same System serves key
// generation and every proof attempt. Building a System twice from the same
// declarations yields structurally identical columns and gates.
type System struct {
	nbAdvice    int
	nbInstance  int
	nbSelectors int

	equality map[Column]struct{}
	gates    []Gate
}

// NewSystem returns an empty configuration.
func NewSystem() *System {
	return &System{equality: make(map[Column]struct{})}
}

// AdviceColumn allocates a private wire column.
func (s *System) AdviceColumn() Column {
	c := Column{Kind: Advice, Index: s.nbAdvice}
	s.nbAdvice++
	return c
}

// InstanceColumn allocates a public wire column.
func (s *System) InstanceColumn() Column {
	c := Column{Kind: Instance, Index: s.nbInstance}
	s.nbInstance++
	return c
}

// Selector allocates a per-row gate flag.
func (s *System) Selector() Selector {
	sel := Selector{Index: s.nbSelectors}
	s.nbSelectors++
	return sel
}

// EnableEquality marks a column as usable in copy constraints. Binding cells
// of a column that was not enabled here fails at synthesis time with
// ErrMissingEquality.
func (s *System) EnableEquality(c Column) {
	s.equality[c] = struct{}{}
}

// EqualityEnabled reports whether the column participates in the copy
// constraint argument.
func (s *System) EqualityEnabled(c Column) bool {
	_, ok := s.equality[c]
	return ok
}

// CreateGate declares a gate constraining every row where sel is active to
// eval(queried values) == 0.
func (s *System) CreateGate(name string, sel Selector, queries []Column, eval GateEval) {
	s.gates = append(s.gates, Gate{
		Name:     name,
		Selector: sel,
		Queries:  append([]Column(nil), queries...),
		eval:     eval,
	})
}

// Gates returns the declared gates.
func (s *System) Gates() []Gate {
	return s.gates
}

// NbAdvice returns the number of advice columns.
func (s *System) NbAdvice() int { return s.nbAdvice }

// NbInstance returns the number of instance columns.
func (s *System) NbInstance() int { return s.nbInstance }

// NbSelectors returns the number of selectors.
func (s *System) NbSelectors() int { return s.nbSelectors }
