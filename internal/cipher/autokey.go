package cipher

import (
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	"github.com/cipherlab-go/internal/modmath"
)

// Autokey extends the keyword with the plaintext itself, so the
// keystream never repeats. Decoding recovers the keystream
// progressively: each decoded letter becomes key material for a later
// position.
type Autokey struct {
	key string
}

// NewAutokey creates an autokey cipher from a keyword.
func NewAutokey(keyword string) (*Autokey, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return &Autokey{key: key}, nil
}

// Family returns the cipher family
func (a *Autokey) Family() Family { return FamilyAutokey }

// Encode uses keystream = keyword + plaintext.
func (a *Autokey) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	ks := a.keystream(t)
	var b strings.Builder
	b.Grow(len(t))
	for i := 0; i < len(t); i++ {
		p := alphabet.Index(t[i])
		k := alphabet.Index(ks[i])
		b.WriteByte(alphabet.Letter(modmath.Mod(p+k, alphabet.Size)))
	}
	return b.String(), nil
}

// Decode rebuilds the keystream as it goes: positions past the keyword
// are keyed by plaintext letters recovered earlier in this same pass.
func (a *Autokey) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	plain := make([]byte, len(t))
	for i := 0; i < len(t); i++ {
		var k int
		if i < len(a.key) {
			k = alphabet.Index(a.key[i])
		} else {
			k = alphabet.Index(plain[i-len(a.key)])
		}
		c := alphabet.Index(t[i])
		plain[i] = alphabet.Letter(modmath.Mod(c-k, alphabet.Size))
	}
	return string(plain), nil
}

// keystream is the keyword followed by the plaintext, truncated to the
// text length. It grows with the text and never wraps.
func (a *Autokey) keystream(canonical string) string {
	ks := a.key + canonical
	return ks[:len(canonical)]
}

// Visualize shows the self-extending keystream and letter mappings.
func (a *Autokey) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyAutokey}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	out, _ := a.Encode(t)
	ks := a.keystream(t)
	viz.Result = out
	viz.Keystream = ks
	viz.Steps = []string{"keystream = keyword followed by the plaintext itself"}
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
