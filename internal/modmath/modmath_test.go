package modmath

import "testing"

func TestMod(t *testing.T) {
	testCases := []struct {
		n, m, want int
	}{
		{7, 26, 7},
		{26, 26, 0},
		{-1, 26, 25},
		{-27, 26, 25},
		{-26, 26, 0},
		{51, 26, 25},
	}
	for _, tc := range testCases {
		if got := Mod(tc.n, tc.m); got != tc.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tc.n, tc.m, got, tc.want)
		}
	}
}

func TestGCD(t *testing.T) {
	testCases := []struct {
		a, b, want int
	}{
		{9, 26, 1},
		{13, 26, 13},
		{0, 26, 26},
		{-4, 26, 2},
		{12, 18, 6},
	}
	for _, tc := range testCases {
		if got := GCD(tc.a, tc.b); got != tc.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestModInverse(t *testing.T) {
	// Every residue coprime with 26 has an inverse; the rest do not.
	for a := 0; a < 26; a++ {
		inv, ok := ModInverse(a, 26)
		coprime := GCD(a, 26) == 1
		if ok != coprime {
			t.Errorf("ModInverse(%d, 26) ok = %v, want %v", a, ok, coprime)
		}
		if ok && (a*inv)%26 != 1 {
			t.Errorf("ModInverse(%d, 26) = %d, product %d", a, inv, (a*inv)%26)
		}
	}
	if inv, ok := ModInverse(9, 26); !ok || inv != 3 {
		t.Errorf("ModInverse(9, 26) = %d, %v, want 3, true", inv, ok)
	}
}

func TestDeterminant(t *testing.T) {
	testCases := []struct {
		name   string
		matrix [][]int
		want   int
	}{
		{"2x2", [][]int{{3, 3}, {2, 5}}, 9},
		{"2x2 singular", [][]int{{2, 4}, {1, 2}}, 0},
		{"3x3 identity", [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"3x3", [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, 441},
		{"4x4 identity", [][]int{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
		{"4x4 triangular", [][]int{{2, 1, 3, 4}, {0, 3, 1, 2}, {0, 0, 5, 7}, {0, 0, 0, 1}}, 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Determinant(tc.matrix); got != tc.want {
				t.Errorf("Determinant = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCheckSquare(t *testing.T) {
	if err := CheckSquare([][]int{{1, 2}, {3, 4}}); err != nil {
		t.Errorf("2x2 rejected: %v", err)
	}
	if err := CheckSquare([][]int{{1}}); err == nil {
		t.Error("1x1 accepted")
	}
	if err := CheckSquare([][]int{{1, 2, 3}, {4, 5, 6}}); err == nil {
		t.Error("non-square accepted")
	}
	big := make([][]int, 5)
	for i := range big {
		big[i] = make([]int, 5)
	}
	if err := CheckSquare(big); err == nil {
		t.Error("5x5 accepted")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	matrices := [][][]int{
		{{3, 3}, {2, 5}},
		{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
		{{1, 2, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 3}, {0, 0, 0, 1}},
	}
	for _, m := range matrices {
		inv, ok := Inverse(m, 26)
		if !ok {
			t.Fatalf("Inverse failed for %v", m)
		}
		n := len(m)
		// m * inv must be the identity mod 26.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum := 0
				for k := 0; k < n; k++ {
					sum += m[i][k] * inv[k][j]
				}
				want := 0
				if i == j {
					want = 1
				}
				if Mod(sum, 26) != want {
					t.Errorf("product[%d][%d] = %d, want %d (matrix %v)", i, j, Mod(sum, 26), want, m)
				}
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	// Determinant 0 and determinant sharing a factor with 26 both fail.
	for _, m := range [][][]int{
		{{2, 4}, {1, 2}},  // det 0
		{{2, 0}, {0, 1}},  // det 2, shares factor 2
		{{13, 0}, {0, 1}}, // det 13, shares factor 13
	} {
		if _, ok := Inverse(m, 26); ok {
			t.Errorf("Inverse succeeded for singular matrix %v", m)
		}
	}
}
