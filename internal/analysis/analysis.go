// Package analysis is the cryptanalysis toolkit: read-only statistics
// over ciphertext (index of coincidence, chi-squared, entropy,
// Kasiski-style key-length estimation) and LCG stream quality scoring.
// Nothing here mutates or feeds back into the ciphers.
package analysis

import (
	"math"
	"sort"

	"github.com/cipherlab-go/internal/alphabet"
)

// Reference points for interpreting the index of coincidence.
const (
	EnglishIC = 0.067 // typical English prose
	RandomIC  = 0.038 // uniform random letters
	// MonoIC is the reference a monoalphabetic subsequence should
	// approach in the Kasiski key-length search.
	MonoIC = 0.065
)

// MinSampleLen is the default minimum ciphertext length below which a
// report is marked insufficient instead of computed.
const MinSampleLen = 20

// KeyLengthCandidate is one Kasiski candidate key length with its mean
// subsequence IC and a confidence score.
type KeyLengthCandidate struct {
	Length     int     `json:"length"`
	IC         float64 `json:"ic"`
	Confidence float64 `json:"confidence"` // min(100, ic/MonoIC*100)
}

// Report is the statistics bundle for one piece of ciphertext.
type Report struct {
	Length         int                  `json:"length"`
	Insufficient   bool                 `json:"insufficient"`
	IC             float64              `json:"ic"`
	ChiSquared     float64              `json:"chi_squared"`
	EntropyBits    float64              `json:"entropy_bits"`
	EntropyPercent float64              `json:"entropy_percent"`
	KeyLengths     []KeyLengthCandidate `json:"key_lengths,omitempty"`
}

// LetterCounts tallies canonical letter frequencies.
func LetterCounts(canonical string) [alphabet.Size]int {
	var counts [alphabet.Size]int
	for i := 0; i < len(canonical); i++ {
		counts[alphabet.Index(canonical[i])]++
	}
	return counts
}

// IndexOfCoincidence is the probability that two randomly chosen
// letters of the text are equal: sum f(f-1) / (n(n-1)). Texts of
// length <= 1 have no letter pairs, so the IC is defined as 0.
func IndexOfCoincidence(text string) float64 {
	t := alphabet.Normalize(text)
	n := len(t)
	if n <= 1 {
		return 0
	}
	counts := LetterCounts(t)
	sum := 0
	for _, f := range counts {
		sum += f * (f - 1)
	}
	return float64(sum) / float64(n*(n-1))
}

// ChiSquaredLetters measures how far the letter distribution sits from
// uniform: sum (observed-expected)^2 / expected over 26 letters.
func ChiSquaredLetters(text string) float64 {
	t := alphabet.Normalize(text)
	if len(t) == 0 {
		return 0
	}
	counts := LetterCounts(t)
	expected := float64(len(t)) / alphabet.Size
	chi := 0.0
	for _, f := range counts {
		d := float64(f) - expected
		chi += d * d / expected
	}
	return chi
}

// ChiSquaredBytes is the uniformity test over the full byte range.
func ChiSquaredBytes(data []byte) float64 {
	return chiSquaredBinned(data, 256)
}

// ChiSquaredBins folds bytes into the given number of equal-width bins
// before testing; 16 bins keeps expected counts meaningful for the
// short samples the LCG quality check uses.
func ChiSquaredBins(data []byte, bins int) float64 {
	return chiSquaredBinned(data, bins)
}

func chiSquaredBinned(data []byte, bins int) float64 {
	if len(data) == 0 || bins <= 0 {
		return 0
	}
	counts := make([]int, bins)
	width := 256 / bins
	for _, b := range data {
		counts[int(b)/width]++
	}
	expected := float64(len(data)) / float64(bins)
	chi := 0.0
	for _, f := range counts {
		d := float64(f) - expected
		chi += d * d / expected
	}
	return chi
}

// EntropyLetters returns the Shannon entropy of the letter distribution
// in bits, and as a percentage of the log2(26) maximum.
func EntropyLetters(text string) (bits, percent float64) {
	t := alphabet.Normalize(text)
	if len(t) == 0 {
		return 0, 0
	}
	counts := LetterCounts(t)
	bits = entropy(counts[:], len(t))
	return bits, 100 * bits / math.Log2(alphabet.Size)
}

// EntropyBytes returns the Shannon entropy of a byte sample in bits,
// and as a percentage of the log2(256) maximum.
func EntropyBytes(data []byte) (bits, percent float64) {
	if len(data) == 0 {
		return 0, 0
	}
	counts := make([]int, 256)
	for _, b := range data {
		counts[b]++
	}
	bits = entropy(counts, len(data))
	return bits, 100 * bits / 8
}

func entropy(counts []int, n int) float64 {
	h := 0.0
	for _, f := range counts {
		if f == 0 {
			continue
		}
		p := float64(f) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// EstimateKeyLength runs the Kasiski-style search: for each candidate
// length k in 2..min(20, n/4), split the text into k interleaved
// subsequences, average their ICs, and rank candidates by closeness to
// the monoalphabetic reference. At most the top 5 are returned.
func EstimateKeyLength(ciphertext string) []KeyLengthCandidate {
	t := alphabet.Normalize(ciphertext)
	n := len(t)
	maxK := n / 4
	if maxK > 20 {
		maxK = 20
	}
	var candidates []KeyLengthCandidate
	for k := 2; k <= maxK; k++ {
		total := 0.0
		for offset := 0; offset < k; offset++ {
			var sub []byte
			for i := offset; i < n; i += k {
				sub = append(sub, t[i])
			}
			total += IndexOfCoincidence(string(sub))
		}
		ic := total / float64(k)
		candidates = append(candidates, KeyLengthCandidate{
			Length:     k,
			IC:         ic,
			Confidence: math.Min(100, ic/MonoIC*100),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].IC-MonoIC) < math.Abs(candidates[j].IC-MonoIC)
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	return candidates
}

// AnalyzeText builds the full report for a piece of ciphertext. Below
// minLen (MinSampleLen when <= 0) the report is marked insufficient
// rather than computed from statistics that would be noise.
func AnalyzeText(ciphertext string, minLen int) *Report {
	if minLen <= 0 {
		minLen = MinSampleLen
	}
	t := alphabet.Normalize(ciphertext)
	r := &Report{Length: len(t)}
	if len(t) < minLen {
		r.Insufficient = true
		return r
	}
	r.IC = IndexOfCoincidence(t)
	r.ChiSquared = ChiSquaredLetters(t)
	r.EntropyBits, r.EntropyPercent = EntropyLetters(t)
	r.KeyLengths = EstimateKeyLength(t)
	return r
}
