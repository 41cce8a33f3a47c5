package layout

import (
	"fmt"

	fibonaccivariant "github.com/HegelXu/fibonacci-variant"
	"github.com/HegelXu/fibonacci-variant/plonkish"
	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// SelectorUse records one selector activation.
type SelectorUse struct {
	Selector int `cbor:"selector"`
	Row      int `cbor:"row"`
}

// RegionShape is the value-independent record of one region: where it was
// placed, which cells it assigned and which selectors it enabled.
type RegionShape struct {
	Name      string          `cbor:"name"`
	Start     int             `cbor:"start"`
	Rows      int             `cbor:"rows"`
	Cells     []plonkish.Cell `cbor:"cells"`
	Selectors []SelectorUse   `cbor:"selectors"`
}

// InstanceBinding records one public exposure: an assigned cell constrained
// to equal an instance column slot.
type InstanceBinding struct {
	Cell   plonkish.Cell   `cbor:"cell"`
	Column plonkish.Column `cbor:"column"`
	Row    int             `cbor:"row"`
}

// Shape is the full layout of a synthesis with witness values stripped out.
// Two instances of the same circuit at the same length produce identical
// shapes whether or not they carry witnesses, which is what lets a
// shape-only synthesis drive key generation.
type Shape struct {
	Version     string             `cbor:"version"`
	NbAdvice    int                `cbor:"nbAdvice"`
	NbInstance  int                `cbor:"nbInstance"`
	NbSelectors int                `cbor:"nbSelectors"`
	NbRows      int                `cbor:"nbRows"`
	Regions     []RegionShape      `cbor:"regions"`
	Copies      [][2]plonkish.Cell `cbor:"copies"`
	Instances   []InstanceBinding  `cbor:"instances"`
}

// Shape returns the layout recorded so far.
func (p *Planner) Shape() Shape {
	return Shape{
		Version:     fibonaccivariant.Version.String(),
		NbAdvice:    p.sys.NbAdvice(),
		NbInstance:  p.sys.NbInstance(),
		NbSelectors: p.sys.NbSelectors(),
		NbRows:      p.nbRows,
		Regions:     p.regions,
		Copies:      p.copies,
		Instances:   p.instances,
	}
}

// ToBytes serializes the shape.
func (s *Shape) ToBytes() ([]byte, error) {
	return cbor.Marshal(s)
}

// ShapeFromBytes deserializes a shape and rejects blobs produced by a
// different major version of the module.
func ShapeFromBytes(data []byte) (Shape, error) {
	var s Shape
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Shape{}, fmt.Errorf("layout: corrupt shape: %w", err)
	}
	v, err := semver.ParseTolerant(s.Version)
	if err != nil {
		return Shape{}, fmt.Errorf("layout: invalid shape version %q: %w", s.Version, err)
	}
	if v.Major != fibonaccivariant.Version.Major {
		return Shape{}, fmt.Errorf("layout: shape version %s incompatible with module version %s", s.Version, fibonaccivariant.Version)
	}
	return s, nil
}
