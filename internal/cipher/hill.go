package cipher

import (
	"strconv"
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	apperrors "github.com/cipherlab-go/internal/errors"
	"github.com/cipherlab-go/internal/modmath"
)

// Hill multiplies n-letter blocks (as column vectors) by an n x n key
// matrix modulo 26. The key must be invertible mod 26; that is checked
// at construction so decode can never fail on the key.
type Hill struct {
	matrix  [][]int
	inverse [][]int
	n       int
}

// NewHill creates a Hill cipher from a square matrix with entries
// reduced into [0, 26).
func NewHill(matrix [][]int) (*Hill, error) {
	if err := modmath.CheckSquare(matrix); err != nil {
		return nil, apperrors.NewInvalidKey(err.Error())
	}
	n := len(matrix)
	m := make([][]int, n)
	for i := range matrix {
		m[i] = make([]int, n)
		for j := range matrix[i] {
			m[i][j] = modmath.Mod(matrix[i][j], alphabet.Size)
		}
	}
	inv, ok := modmath.Inverse(m, alphabet.Size)
	if !ok {
		det := modmath.Mod(modmath.Determinant(m), alphabet.Size)
		return nil, apperrors.NewInvalidKeyf("matrix is not invertible mod 26 (determinant %d shares a factor with 26)", det)
	}
	return &Hill{matrix: m, inverse: inv, n: n}, nil
}

// NewHillFromCSV parses a flat row-major comma-separated integer list.
// The count must be a perfect square with side 2, 3, or 4.
func NewHillFromCSV(csv string) (*Hill, error) {
	matrix, err := ParseMatrixCSV(csv)
	if err != nil {
		return nil, err
	}
	return NewHill(matrix)
}

// ParseMatrixCSV parses "3,3,2,5" style input into a square matrix.
func ParseMatrixCSV(csv string) ([][]int, error) {
	fields := strings.Split(csv, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, apperrors.NewInvalidKeyf("matrix entry %q is not an integer", f)
		}
		values = append(values, v)
	}
	n := 0
	for side := modmath.MinMatrixSize; side <= modmath.MaxMatrixSize; side++ {
		if side*side == len(values) {
			n = side
			break
		}
	}
	if n == 0 {
		return nil, apperrors.NewInvalidKeyf("matrix needs 4, 9, or 16 entries, got %d", len(values))
	}
	matrix := make([][]int, n)
	for i := 0; i < n; i++ {
		matrix[i] = values[i*n : (i+1)*n]
	}
	return matrix, nil
}

// ValidateHillKey reports whether a matrix is usable as a Hill key:
// square, size 2-4, and invertible mod 26.
func ValidateHillKey(matrix [][]int) bool {
	if modmath.CheckSquare(matrix) != nil {
		return false
	}
	det := modmath.Mod(modmath.Determinant(matrix), alphabet.Size)
	return modmath.GCD(det, alphabet.Size) == 1
}

// Family returns the cipher family
func (h *Hill) Family() Family { return FamilyHill }

// BlockSize returns the matrix side length n.
func (h *Hill) BlockSize() int { return h.n }

// Encode pads canonical text to a block multiple and multiplies each
// block by the key matrix.
func (h *Hill) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	return h.apply(pad(t, h.n), h.matrix), nil
}

// Decode multiplies blocks by the inverse matrix. Ciphertext length
// must already be a block multiple.
func (h *Hill) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	if len(t)%h.n != 0 {
		return "", apperrors.NewFormatErrorf("hill ciphertext length must be a multiple of %d, got %d", h.n, len(t))
	}
	return h.apply(t, h.inverse), nil
}

// pad right-pads canonical text with the filler to a multiple of n.
func pad(canonical string, n int) string {
	for len(canonical)%n != 0 {
		canonical += string(alphabet.Filler)
	}
	return canonical
}

func (h *Hill) apply(canonical string, m [][]int) string {
	var b strings.Builder
	b.Grow(len(canonical))
	for i := 0; i < len(canonical); i += h.n {
		for row := 0; row < h.n; row++ {
			sum := 0
			for col := 0; col < h.n; col++ {
				sum += m[row][col] * alphabet.Index(canonical[i+col])
			}
			b.WriteByte(alphabet.Letter(modmath.Mod(sum, alphabet.Size)))
		}
	}
	return b.String()
}

// Visualize shows each block as vector in, matrix product, letters out.
func (h *Hill) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyHill}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	padded := pad(t, h.n)
	var out strings.Builder
	for i := 0; i < len(padded); i += h.n {
		block := padded[i : i+h.n]
		vec := make([]int, h.n)
		res := make([]int, h.n)
		for j := 0; j < h.n; j++ {
			vec[j] = alphabet.Index(block[j])
		}
		enc := make([]byte, h.n)
		for row := 0; row < h.n; row++ {
			sum := 0
			for col := 0; col < h.n; col++ {
				sum += h.matrix[row][col] * vec[col]
			}
			res[row] = modmath.Mod(sum, alphabet.Size)
			enc[row] = alphabet.Letter(res[row])
		}
		viz.Blocks = append(viz.Blocks, BlockStep{
			In:     block,
			Vector: vec,
			Result: res,
			Out:    string(enc),
		})
		out.Write(enc)
	}
	viz.Result = out.String()
	return viz, nil
}
