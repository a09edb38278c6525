// Package modmath implements the modular arithmetic used by the Hill
// cipher: true modulo, gcd, modular inverse, and square-matrix
// determinant/adjugate/inverse over a small modulus.
//
// This is the most numerically delicate code in the repository; shift
// and subtraction steps elsewhere produce negative intermediates, so
// Mod must always return a non-negative value.
package modmath

import "fmt"

// MinMatrixSize and MaxMatrixSize bound the matrix keys the library
// accepts. The cofactor recursion itself works for any n.
const (
	MinMatrixSize = 2
	MaxMatrixSize = 4
)

// Mod returns the mathematical modulo of n, always in [0, m).
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x with (a*x) mod m == 1. The second result is
// false when gcd(a, m) != 1; that outcome is meaningful output (it is
// how Hill key validation works), not an error. A linear scan is exact
// and fast enough for the fixed modulus 26.
func ModInverse(a, m int) (int, bool) {
	a = Mod(a, m)
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, true
		}
	}
	return 0, false
}

// CheckSquare validates that m is a square matrix of an accepted size.
func CheckSquare(m [][]int) error {
	n := len(m)
	if n < MinMatrixSize || n > MaxMatrixSize {
		return fmt.Errorf("matrix size must be between %d and %d, got %d", MinMatrixSize, MaxMatrixSize, n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("matrix row %d has %d entries, want %d", i, len(row), n)
		}
	}
	return nil
}

// Determinant computes the determinant of a square matrix. 2x2 and 3x3
// use closed forms; larger sizes expand cofactors along the first row.
// The recursion is size-agnostic even though key validation rejects
// matrices above 4x4.
func Determinant(m [][]int) int {
	switch len(m) {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	case 3:
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	}
	det := 0
	sign := 1
	for col := 0; col < len(m); col++ {
		det += sign * m[0][col] * Determinant(minor(m, 0, col))
		sign = -sign
	}
	return det
}

// minor returns m with row r and column c removed.
func minor(m [][]int, r, c int) [][]int {
	n := len(m)
	out := make([][]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		row := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			row = append(row, m[i][j])
		}
		out = append(out, row)
	}
	return out
}

// Adjugate returns the transpose of the cofactor matrix.
func Adjugate(m [][]int) [][]int {
	n := len(m)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	if n == 1 {
		adj[0][0] = 1
		return adj
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cofactor := Determinant(minor(m, i, j))
			if (i+j)%2 != 0 {
				cofactor = -cofactor
			}
			// Transposed placement.
			adj[j][i] = cofactor
		}
	}
	return adj
}

// Inverse returns the modular inverse of m: adjugate times the modular
// inverse of the determinant, reduced entrywise. The second result is
// false when the determinant has no inverse modulo modulus.
func Inverse(m [][]int, modulus int) ([][]int, bool) {
	detInv, ok := ModInverse(Determinant(m), modulus)
	if !ok {
		return nil, false
	}
	adj := Adjugate(m)
	n := len(m)
	inv := make([][]int, n)
	for i := 0; i < n; i++ {
		inv[i] = make([]int, n)
		for j := 0; j < n; j++ {
			inv[i][j] = Mod(adj[i][j]*detInv, modulus)
		}
	}
	return inv, true
}
