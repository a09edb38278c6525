package cipher

import (
	"github.com/cipherlab-go/internal/alphabet"
)

// Columnar writes text row-major into a keyword-width grid and reads
// columns in alphabetical keyword order, ties broken by position.
// Myszkowski is the same construction with equal keyword letters read
// together as one group; both share the group-based grid code so the
// single differing rule stays in one place.
type Columnar struct {
	family Family
	key    string
	groups []ColumnGroup
}

// NewColumnar creates a columnar transposition from a keyword.
func NewColumnar(keyword string) (*Columnar, error) {
	return newGridTransposition(FamilyColumnar, keyword, false)
}

// NewMyszkowski creates a Myszkowski transposition from a keyword.
// With no repeated keyword letters it degenerates to plain Columnar.
func NewMyszkowski(keyword string) (*Columnar, error) {
	return newGridTransposition(FamilyMyszkowski, keyword, true)
}

func newGridTransposition(family Family, keyword string, grouped bool) (*Columnar, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return &Columnar{
		family: family,
		key:    key,
		groups: columnGroups(key, grouped),
	}, nil
}

// Family returns the cipher family
func (c *Columnar) Family() Family { return c.family }

// Groups returns the derived column read order.
func (c *Columnar) Groups() []ColumnGroup { return c.groups }

// Encode pads to a full rectangle and reads columns by group order.
func (c *Columnar) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	padded := padToRectangle(t, len(c.key))
	return readByGroups(padded, len(c.key), c.groups), nil
}

// Decode refills the grid in group order, reads row-major, and trims
// the trailing filler.
func (c *Columnar) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	if len(t)%len(c.key) != 0 {
		// The grid was padded to a full rectangle on encode, so a
		// partial final row means the text was not produced by this key
		// width. Refuse rather than guess short columns.
		return "", formatErrNotRectangular(c.family, len(t), len(c.key))
	}
	grid := fillByGroups(t, len(c.key), c.groups)
	return trimFiller(string(grid)), nil
}

// Visualize shows the grid, the column order, and the result.
func (c *Columnar) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: c.family}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	padded := padToRectangle(t, len(c.key))
	viz.Grid = gridView(padded, len(c.key))
	viz.Columns = c.groups
	viz.Keystream = c.key
	viz.Result = readByGroups(padded, len(c.key), c.groups)
	return viz, nil
}
