package cipher

import (
	"sort"
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
)

// columnGroups derives the column read order from a keyword: a stable
// alphabetical sort of its letters, expressed as ordered groups of
// column indices. Columnar uses singleton groups (ties broken by
// original position); Myszkowski merges equal letters into one group —
// the single rule that separates the two ciphers.
func columnGroups(key string, grouped bool) []ColumnGroup {
	type col struct {
		letter byte
		index  int
	}
	cols := make([]col, len(key))
	for i := 0; i < len(key); i++ {
		cols[i] = col{letter: key[i], index: i}
	}
	sort.SliceStable(cols, func(i, j int) bool {
		if cols[i].letter != cols[j].letter {
			return cols[i].letter < cols[j].letter
		}
		return cols[i].index < cols[j].index
	})

	var groups []ColumnGroup
	for _, c := range cols {
		if grouped && len(groups) > 0 && groups[len(groups)-1].Letter == string(c.letter) {
			last := &groups[len(groups)-1]
			last.Indices = append(last.Indices, c.index)
			continue
		}
		groups = append(groups, ColumnGroup{
			Rank:    len(groups) + 1,
			Letter:  string(c.letter),
			Indices: []int{c.index},
		})
	}
	// Inside a group the columns read left to right.
	for i := range groups {
		sort.Ints(groups[i].Indices)
	}
	return groups
}

// padToRectangle right-pads canonical text with the filler so that
// rows x cols covers it exactly.
func padToRectangle(canonical string, cols int) string {
	for len(canonical)%cols != 0 {
		canonical += string(alphabet.Filler)
	}
	return canonical
}

// gridRows slices padded text into row-major rows of width cols.
func gridRows(padded string, cols int) []string {
	rows := make([]string, 0, len(padded)/cols)
	for i := 0; i < len(padded); i += cols {
		rows = append(rows, padded[i:i+cols])
	}
	return rows
}

// readByGroups reads the grid group by group: within a group, row by
// row across that group's columns. Singleton groups reduce to reading
// one column top to bottom.
func readByGroups(padded string, cols int, groups []ColumnGroup) string {
	rows := len(padded) / cols
	var b strings.Builder
	b.Grow(len(padded))
	for _, g := range groups {
		for r := 0; r < rows; r++ {
			for _, c := range g.Indices {
				b.WriteByte(padded[r*cols+c])
			}
		}
	}
	return b.String()
}

// fillByGroups inverts readByGroups: it writes ciphertext back into
// grid positions in group read order, then the caller reads row-major.
func fillByGroups(ciphertext string, cols int, groups []ColumnGroup) []byte {
	rows := len(ciphertext) / cols
	grid := make([]byte, len(ciphertext))
	i := 0
	for _, g := range groups {
		for r := 0; r < rows; r++ {
			for _, c := range g.Indices {
				grid[r*cols+c] = ciphertext[i]
				i++
			}
		}
	}
	return grid
}

// trimFiller removes trailing padding letters left over from the
// rectangle fill.
func trimFiller(s string) string {
	return strings.TrimRight(s, string(alphabet.Filler))
}

// gridView renders the padded grid for visualization records.
func gridView(padded string, cols int) [][]string {
	rows := gridRows(padded, cols)
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[j] = string(row[j])
		}
		out[i] = cells
	}
	return out
}
