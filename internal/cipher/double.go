package cipher

import (
	"github.com/cipherlab-go/internal/alphabet"
)

// DoubleColumnar runs columnar transposition twice with two keywords.
// The second keyword defaults to the first. Decode undoes the passes in
// reverse key order.
type DoubleColumnar struct {
	first  *Columnar
	second *Columnar
}

// NewDoubleColumnar creates a double columnar transposition.
func NewDoubleColumnar(keyword, keyword2 string) (*DoubleColumnar, error) {
	first, err := NewColumnar(keyword)
	if err != nil {
		return nil, err
	}
	if keyword2 == "" {
		keyword2 = keyword
	}
	second, err := NewColumnar(keyword2)
	if err != nil {
		return nil, err
	}
	return &DoubleColumnar{first: first, second: second}, nil
}

// Family returns the cipher family
func (d *DoubleColumnar) Family() Family { return FamilyDouble }

// Encode applies the first key then the second.
func (d *DoubleColumnar) Encode(text string) (string, error) {
	mid, err := d.first.Encode(text)
	if err != nil {
		return "", err
	}
	return d.second.Encode(mid)
}

// Decode undoes the second pass first.
func (d *DoubleColumnar) Decode(text string) (string, error) {
	mid, err := d.second.Decode(text)
	if err != nil {
		return "", err
	}
	return d.first.Decode(mid)
}

// Visualize records both passes as pipeline stages, with the grid of
// the first pass.
func (d *DoubleColumnar) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyDouble}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	mid, err := d.first.Encode(t)
	if err != nil {
		return viz, err
	}
	out, err := d.second.Encode(mid)
	if err != nil {
		return viz, err
	}
	firstViz, _ := d.first.Visualize(t)
	viz.Grid = firstViz.Grid
	viz.Columns = firstViz.Columns
	viz.Stages = []StageStep{
		{Name: "columnar (" + d.first.key + ")", Input: t, Output: mid},
		{Name: "columnar (" + d.second.key + ")", Input: mid, Output: out},
	}
	viz.Result = out
	return viz, nil
}
