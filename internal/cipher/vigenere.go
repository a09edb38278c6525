package cipher

import (
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	"github.com/cipherlab-go/internal/modmath"
)

// Vigenere is the repeating-keyword polyalphabetic substitution:
// C = (P + K) mod 26 with the keyword cycled over the text.
type Vigenere struct {
	key string
}

// NewVigenere creates a Vigenère cipher from a keyword.
func NewVigenere(keyword string) (*Vigenere, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return &Vigenere{key: key}, nil
}

// Family returns the cipher family
func (v *Vigenere) Family() Family { return FamilyVigenere }

// Encode applies C = (P + K) mod 26 with the repeated keyword.
func (v *Vigenere) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	return v.shift(t, 1), nil
}

// Decode applies P = (C - K) mod 26.
func (v *Vigenere) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	return v.shift(t, -1), nil
}

func (v *Vigenere) shift(canonical string, sign int) string {
	var b strings.Builder
	b.Grow(len(canonical))
	for i := 0; i < len(canonical); i++ {
		k := alphabet.Index(v.key[i%len(v.key)])
		p := alphabet.Index(canonical[i])
		b.WriteByte(alphabet.Letter(modmath.Mod(p+sign*k, alphabet.Size)))
	}
	return b.String()
}

// Visualize shows the repeated keystream and each letter mapping.
func (v *Vigenere) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyVigenere}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	out := v.shift(t, 1)
	ks := make([]byte, len(t))
	for i := range ks {
		ks[i] = v.key[i%len(v.key)]
	}
	viz.Result = out
	viz.Keystream = string(ks)
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
