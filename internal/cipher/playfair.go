package cipher

import (
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	apperrors "github.com/cipherlab-go/internal/errors"
	"github.com/cipherlab-go/internal/modmath"
)

const playfairSide = 5

// Playfair encrypts digraphs against a 5x5 key grid. J is an alias of
// I throughout, doubled letters are split with a filler, and odd-length
// text is padded.
type Playfair struct {
	key  string
	grid [playfairSide][playfairSide]byte
	pos  map[byte][2]int
}

// NewPlayfair builds the key grid: deduplicated keyword first, then the
// remaining 25 letters (I/J merged) in order.
func NewPlayfair(keyword string) (*Playfair, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	p := &Playfair{key: key, pos: make(map[byte][2]int, 25)}

	seen := make(map[byte]bool, 25)
	cells := make([]byte, 0, 25)
	add := func(c byte) {
		if c == 'J' {
			c = 'I'
		}
		if !seen[c] {
			seen[c] = true
			cells = append(cells, c)
		}
	}
	for i := 0; i < len(key); i++ {
		add(key[i])
	}
	for c := byte('A'); c <= 'Z'; c++ {
		add(c)
	}
	for i, c := range cells {
		row, col := i/playfairSide, i%playfairSide
		p.grid[row][col] = c
		p.pos[c] = [2]int{row, col}
	}
	return p, nil
}

// Family returns the cipher family
func (p *Playfair) Family() Family { return FamilyPlayfair }

// Grid returns the 5x5 key grid as rows of letters.
func (p *Playfair) Grid() [][]string {
	out := make([][]string, playfairSide)
	for r := 0; r < playfairSide; r++ {
		out[r] = make([]string, playfairSide)
		for c := 0; c < playfairSide; c++ {
			out[r][c] = string(p.grid[r][c])
		}
	}
	return out
}

// Digraphs segments canonical text into letter pairs, inserting a
// filler between doubled letters and after a trailing single letter.
func (p *Playfair) Digraphs(canonical string) []string {
	text := strings.ReplaceAll(canonical, "J", "I")
	var pairs []string
	for i := 0; i < len(text); {
		a := text[i]
		var b byte
		switch {
		case i+1 >= len(text):
			b = fillerFor(a)
			i++
		case text[i+1] == a:
			b = fillerFor(a)
			i++
		default:
			b = text[i+1]
			i += 2
		}
		pairs = append(pairs, string([]byte{a, b}))
	}
	return pairs
}

// fillerFor picks the padding letter: X, or Q when the letter being
// split is X itself.
func fillerFor(a byte) byte {
	if a == alphabet.Filler {
		return alphabet.AltFiller
	}
	return alphabet.Filler
}

// Encode applies the digraph rules: same row shifts columns right,
// same column shifts rows down, otherwise swap columns.
func (p *Playfair) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, pair := range p.Digraphs(t) {
		x, y := p.shift(pair[0], pair[1], 1)
		b.WriteByte(x)
		b.WriteByte(y)
	}
	return b.String(), nil
}

// Decode applies the mirror shifts. Ciphertext length must be even.
func (p *Playfair) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	t = strings.ReplaceAll(t, "J", "I")
	if len(t)%2 != 0 {
		return "", apperrors.NewFormatErrorf("playfair ciphertext length must be even, got %d", len(t))
	}
	var b strings.Builder
	for i := 0; i < len(t); i += 2 {
		x, y := p.shift(t[i], t[i+1], -1)
		b.WriteByte(x)
		b.WriteByte(y)
	}
	return b.String(), nil
}

// shift transforms one digraph; dir is +1 for encode, -1 for decode.
// The rectangle rule is self-inverse, so dir only matters for row and
// column pairs.
func (p *Playfair) shift(a, b byte, dir int) (byte, byte) {
	pa, pb := p.pos[a], p.pos[b]
	switch {
	case pa[0] == pb[0]: // same row
		return p.grid[pa[0]][modmath.Mod(pa[1]+dir, playfairSide)],
			p.grid[pb[0]][modmath.Mod(pb[1]+dir, playfairSide)]
	case pa[1] == pb[1]: // same column
		return p.grid[modmath.Mod(pa[0]+dir, playfairSide)][pa[1]],
			p.grid[modmath.Mod(pb[0]+dir, playfairSide)][pb[1]]
	default: // rectangle: swap columns, keep rows
		return p.grid[pa[0]][pb[1]], p.grid[pb[0]][pa[1]]
	}
}

func (p *Playfair) ruleName(a, b byte) string {
	pa, pb := p.pos[a], p.pos[b]
	switch {
	case pa[0] == pb[0]:
		return "row"
	case pa[1] == pb[1]:
		return "column"
	default:
		return "rectangle"
	}
}

// Visualize shows the key grid and each digraph transformation.
func (p *Playfair) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyPlayfair}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	viz.Grid = p.Grid()
	var out strings.Builder
	for _, pair := range p.Digraphs(t) {
		x, y := p.shift(pair[0], pair[1], 1)
		enc := string([]byte{x, y})
		viz.Digraphs = append(viz.Digraphs, DigraphStep{
			Pair: pair,
			Rule: p.ruleName(pair[0], pair[1]),
			Out:  enc,
		})
		out.WriteString(enc)
	}
	viz.Result = out.String()
	return viz, nil
}
