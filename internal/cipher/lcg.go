package cipher

import (
	"encoding/hex"
	"fmt"
	"sort"

	apperrors "github.com/cipherlab-go/internal/errors"
)

// LCGParams are the four parameters of a linear congruential generator:
// X(n+1) = (multiplier*X(n) + increment) mod modulus.
type LCGParams struct {
	Seed       uint64 `json:"seed"`
	Multiplier uint64 `json:"multiplier"`
	Increment  uint64 `json:"increment"`
	Modulus    uint64 `json:"modulus"`
}

// LCGPreset is a named read-only parameter set.
type LCGPreset struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Params      LCGParams `json:"params"`
}

// lcgPresets is process-wide immutable configuration; it is only ever
// read after init.
var lcgPresets = map[string]LCGPreset{
	"ansic": {
		Name:        "ansic",
		Description: "ANSI C rand() parameters",
		Params:      LCGParams{Seed: 12345, Multiplier: 1103515245, Increment: 12345, Modulus: 1 << 31},
	},
	"minstd": {
		Name:        "minstd",
		Description: "Park-Miller minimal standard generator",
		Params:      LCGParams{Seed: 1, Multiplier: 16807, Increment: 0, Modulus: 2147483647},
	},
	"numerical-recipes": {
		Name:        "numerical-recipes",
		Description: "Numerical Recipes ranqd1 parameters",
		Params:      LCGParams{Seed: 1, Multiplier: 1664525, Increment: 1013904223, Modulus: 1 << 32},
	},
	"randu": {
		Name:        "randu",
		Description: "IBM RANDU, famously bad; kept as a cautionary example",
		Params:      LCGParams{Seed: 1, Multiplier: 65539, Increment: 0, Modulus: 1 << 31},
	},
	"classroom": {
		Name:        "classroom",
		Description: "tiny full-period generator (m=256) small enough to trace by hand",
		Params:      LCGParams{Seed: 7, Multiplier: 21, Increment: 5, Modulus: 256},
	},
}

// Presets returns the preset table sorted by name.
func Presets() []LCGPreset {
	out := make([]LCGPreset, 0, len(lcgPresets))
	for _, p := range lcgPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetByName looks up one preset.
func PresetByName(name string) (LCGPreset, bool) {
	p, ok := lcgPresets[name]
	return p, ok
}

// LCG XORs byte values against an LCG keystream. Unlike the letter
// ciphers it operates on raw bytes, and its ciphertext is hex-encoded
// so it survives transport as text. XOR makes it self-inverse.
type LCG struct {
	params LCGParams
	preset string
}

// NewLCG creates an LCG stream cipher after validating the parameters:
// modulus >= 2 and seed/multiplier/increment each in [0, modulus).
func NewLCG(params LCGParams) (*LCG, error) {
	if params.Modulus < 2 {
		return nil, apperrors.NewInvalidKeyf("modulus must be at least 2, got %d", params.Modulus)
	}
	if params.Multiplier == 0 {
		return nil, apperrors.NewInvalidKey("multiplier must be non-zero or the stream collapses to a constant")
	}
	for name, v := range map[string]uint64{
		"seed":       params.Seed,
		"multiplier": params.Multiplier,
		"increment":  params.Increment,
	} {
		if v >= params.Modulus {
			return nil, apperrors.NewInvalidKeyf("%s %d must be in [0, modulus %d)", name, v, params.Modulus)
		}
	}
	return &LCG{params: params}, nil
}

// NewLCGFromPreset creates an LCG from a named preset; a non-zero seed
// overrides the preset's default.
func NewLCGFromPreset(name string, seed uint64) (*LCG, error) {
	preset, ok := lcgPresets[name]
	if !ok {
		return nil, apperrors.NewInvalidKeyf("unknown LCG preset %q", name)
	}
	params := preset.Params
	if seed != 0 {
		params.Seed = seed % params.Modulus
	}
	l, err := NewLCG(params)
	if err != nil {
		return nil, err
	}
	l.preset = name
	return l, nil
}

// Family returns the cipher family
func (l *LCG) Family() Family { return FamilyLCG }

// Params returns the generator parameters.
func (l *LCG) Params() LCGParams { return l.params }

// Keystream generates n keystream bytes: byte i is X(i+1) mod 256.
func (l *LCG) Keystream(n int) []byte {
	out := make([]byte, n)
	x := l.params.Seed
	for i := 0; i < n; i++ {
		x = (l.params.Multiplier*x + l.params.Increment) % l.params.Modulus
		out[i] = byte(x % 256)
	}
	return out
}

// Encode XORs the text's bytes with the keystream and hex-encodes.
func (l *LCG) Encode(text string) (string, error) {
	if len(text) == 0 {
		return "", apperrors.NewInvalidInput("text is empty")
	}
	data := []byte(text)
	ks := l.Keystream(len(data))
	for i := range data {
		data[i] ^= ks[i]
	}
	return hex.EncodeToString(data), nil
}

// Decode hex-decodes the ciphertext and XORs with the same keystream.
func (l *LCG) Decode(text string) (string, error) {
	if len(text) == 0 {
		return "", apperrors.NewInvalidInput("ciphertext is empty")
	}
	data, err := hex.DecodeString(text)
	if err != nil {
		return "", apperrors.NewFormatError("ciphertext is not valid hex")
	}
	ks := l.Keystream(len(data))
	for i := range data {
		data[i] ^= ks[i]
	}
	return string(data), nil
}

// Advisories flags parameter choices known to weaken the stream.
func (l *LCG) Advisories() []string {
	var out []string
	if l.params.Modulus < 256 {
		out = append(out, fmt.Sprintf("modulus %d is below 256, so keystream bytes cannot cover the byte range", l.params.Modulus))
	}
	if l.preset == "randu" {
		out = append(out, "RANDU is a historically broken generator; its triples fall on 15 planes")
	}
	return out
}

// KeyHex renders the parameters as a compact hex tuple.
func (l *LCG) KeyHex() string {
	return fmt.Sprintf("%x:%x:%x:%x", l.params.Seed, l.params.Multiplier, l.params.Increment, l.params.Modulus)
}

// KeyBinary renders the parameters as binary strings.
func (l *LCG) KeyBinary() string {
	return fmt.Sprintf("%b:%b:%b:%b", l.params.Seed, l.params.Multiplier, l.params.Increment, l.params.Modulus)
}

// Visualize shows the first keystream bytes and per-byte XOR mappings.
func (l *LCG) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyLCG}
	if len(text) == 0 {
		return viz, nil
	}
	data := []byte(text)
	ks := l.Keystream(len(data))
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ ks[i]
	}
	viz.Keystream = hex.EncodeToString(ks)
	viz.Result = hex.EncodeToString(out)
	viz.Steps = []string{
		fmt.Sprintf("X(n+1) = (%d*X(n) + %d) mod %d, keystream byte = X mod 256", l.params.Multiplier, l.params.Increment, l.params.Modulus),
	}
	for i := range data {
		viz.Mappings = append(viz.Mappings, CharMapping{
			Index:  i,
			Plain:  fmt.Sprintf("%02x", data[i]),
			Key:    fmt.Sprintf("%02x", ks[i]),
			Cipher: fmt.Sprintf("%02x", out[i]),
		})
	}
	return viz, nil
}
