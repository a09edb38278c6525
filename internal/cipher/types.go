// Package cipher implements the classical cipher families: letter-shift
// and keyword substitution, digraph and matrix polygraphic ciphers,
// fence and columnar transpositions, a composite product cipher, a
// one-time pad, and an LCG stream cipher.
//
// None of these are secure. They exist to teach cryptographic concepts;
// several are deliberately weak and the analysis package exists to show
// exactly how weak.
package cipher

// Family identifies a cipher family
type Family string

const (
	FamilyCaesar     Family = "caesar"
	FamilyVigenere   Family = "vigenere"
	FamilyBeaufort   Family = "beaufort"
	FamilyAutokey    Family = "autokey"
	FamilyPlayfair   Family = "playfair"
	FamilyHill       Family = "hill"
	FamilyRailFence  Family = "railfence"
	FamilyColumnar   Family = "columnar"
	FamilyMyszkowski Family = "myszkowski"
	FamilyDouble     Family = "doublecolumnar"
	FamilySuper      Family = "super"
	FamilyOTP        Family = "otp"
	FamilyLCG        Family = "lcg"
)

// Stage order values for the super (product) cipher.
const (
	OrderSubstitutionFirst  = "substitution-first"
	OrderTranspositionFirst = "transposition-first"
)

// KeySpec carries key material for any family as flat fields, so keys
// can arrive from JSON bodies or CLI flags without per-family DTOs.
// Each factory reads only the fields it needs.
type KeySpec struct {
	Keyword  string `json:"keyword,omitempty"`
	Keyword2 string `json:"keyword2,omitempty"` // double columnar second key, defaults to Keyword
	Shift    int    `json:"shift,omitempty"`
	Rails    int    `json:"rails,omitempty"`
	Matrix   string `json:"matrix,omitempty"` // row-major comma-separated integers
	Order    string `json:"order,omitempty"`  // super cipher stage order
	Pad      string `json:"pad,omitempty"`    // one-time pad key

	// LCG parameters; Preset overrides the numeric fields when set.
	Preset     string `json:"preset,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`
	Multiplier uint64 `json:"multiplier,omitempty"`
	Increment  uint64 `json:"increment,omitempty"`
	Modulus    uint64 `json:"modulus,omitempty"`
}

// Cipher is the common three-operation contract every family exposes.
// Implementations are pure: no shared mutable state, safe for
// concurrent use.
type Cipher interface {
	Family() Family
	// Encode transforms plaintext to ciphertext.
	Encode(text string) (string, error)
	// Decode transforms ciphertext back to (canonical) plaintext.
	Decode(text string) (string, error)
	// Visualize returns the intermediate values of an encode for
	// step-by-step display. It never fails for input that Encode
	// accepts; empty canonical text yields an empty record.
	Visualize(text string) (*Visualization, error)
}

// Advisor is implemented by ciphers that attach advisory warnings to
// otherwise valid keys (OTP randomness, LCG quality). Advisories never
// block a transform.
type Advisor interface {
	Advisories() []string
}

// Visualization is a read-only snapshot of the intermediate values of
// one encode: fully reconstructible from (text, key), carrying no
// lifecycle of its own. Families fill only the fields that apply.
type Visualization struct {
	Family    Family        `json:"family"`
	Steps     []string      `json:"steps,omitempty"`
	Keystream string        `json:"keystream,omitempty"`
	Mappings  []CharMapping `json:"mappings,omitempty"`
	Grid      [][]string    `json:"grid,omitempty"`
	Columns   []ColumnGroup `json:"columns,omitempty"`
	Digraphs  []DigraphStep `json:"digraphs,omitempty"`
	Blocks    []BlockStep   `json:"blocks,omitempty"`
	Rails     [][]string    `json:"rails,omitempty"`
	Stages    []StageStep   `json:"stages,omitempty"`
	Result    string        `json:"result"`
}

// CharMapping records one per-character substitution step.
type CharMapping struct {
	Index  int    `json:"index"`
	Plain  string `json:"plain"`
	Key    string `json:"key,omitempty"`
	Cipher string `json:"cipher"`
}

// ColumnGroup records one read-order group of grid columns. Columnar
// uses singleton groups; Myszkowski groups equal keyword letters.
type ColumnGroup struct {
	Rank    int    `json:"rank"`
	Letter  string `json:"letter"`
	Indices []int  `json:"indices"`
}

// DigraphStep records one Playfair digraph transformation.
type DigraphStep struct {
	Pair string `json:"pair"`
	Rule string `json:"rule"` // "row", "column", or "rectangle"
	Out  string `json:"out"`
}

// BlockStep records one Hill block: letters in, vector math, letters out.
type BlockStep struct {
	In     string `json:"in"`
	Vector []int  `json:"vector"`
	Result []int  `json:"result"`
	Out    string `json:"out"`
}

// StageStep records one stage of the super cipher pipeline.
type StageStep struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Output string `json:"output"`
}
