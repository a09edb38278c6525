package cipher

import (
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	"github.com/cipherlab-go/internal/modmath"
)

// Beaufort substitutes C = (K - P) mod 26 with a repeating keyword.
// The formula is its own inverse, so Decode is literally Encode: a
// reciprocal cipher.
type Beaufort struct {
	key string
}

// NewBeaufort creates a Beaufort cipher from a keyword.
func NewBeaufort(keyword string) (*Beaufort, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return &Beaufort{key: key}, nil
}

// Family returns the cipher family
func (b *Beaufort) Family() Family { return FamilyBeaufort }

// Encode applies C = (K - P) mod 26.
func (b *Beaufort) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	return b.transform(t), nil
}

// Decode is the same transform as Encode.
func (b *Beaufort) Decode(text string) (string, error) {
	return b.Encode(text)
}

func (b *Beaufort) transform(canonical string) string {
	var sb strings.Builder
	sb.Grow(len(canonical))
	for i := 0; i < len(canonical); i++ {
		k := alphabet.Index(b.key[i%len(b.key)])
		p := alphabet.Index(canonical[i])
		sb.WriteByte(alphabet.Letter(modmath.Mod(k-p, alphabet.Size)))
	}
	return sb.String()
}

// Visualize shows the keystream and per-letter K-P mappings.
func (b *Beaufort) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyBeaufort}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	out := b.transform(t)
	ks := make([]byte, len(t))
	for i := range ks {
		ks[i] = b.key[i%len(b.key)]
	}
	viz.Result = out
	viz.Keystream = string(ks)
	viz.Steps = []string{"C = (K - P) mod 26; running the same transform on the output restores the input"}
	for i := 0; i < len(t); i++ {
		viz.Mappings = append(viz.Mappings, CharMapping{
			Index:  i,
			Plain:  string(t[i]),
			Key:    string(ks[i]),
			Cipher: string(out[i]),
		})
	}
	return viz, nil
}
