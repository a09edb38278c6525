package cipher

import (
	"fmt"
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	apperrors "github.com/cipherlab-go/internal/errors"
	"github.com/cipherlab-go/internal/modmath"
)

// Caesar shifts every letter by a constant. Unlike every other family
// it preserves case and non-letter characters instead of discarding
// them; that asymmetry is deliberate and matched by its tests.
type Caesar struct {
	shift int
}

// NewCaesar creates a Caesar cipher. Any integer shift is accepted and
// normalized into [0, 26).
func NewCaesar(shift int) (*Caesar, error) {
	return &Caesar{shift: modmath.Mod(shift, alphabet.Size)}, nil
}

// Family returns the cipher family
func (c *Caesar) Family() Family { return FamilyCaesar }

// Shift returns the normalized shift value.
func (c *Caesar) Shift() int { return c.shift }

// Encode shifts letters forward, passing other characters through.
func (c *Caesar) Encode(text string) (string, error) {
	return c.transform(text, c.shift)
}

// Decode shifts letters backward.
func (c *Caesar) Decode(text string) (string, error) {
	return c.transform(text, -c.shift)
}

func (c *Caesar) transform(text string, shift int) (string, error) {
	if alphabet.Normalize(text) == "" {
		return "", apperrors.NewInvalidInput("text has no usable characters")
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte(alphabet.Letter(modmath.Mod(alphabet.Index(ch)+shift, alphabet.Size)))
		case ch >= 'a' && ch <= 'z':
			b.WriteByte(alphabet.Letter(modmath.Mod(int(ch-'a')+shift, alphabet.Size)) + ('a' - 'A'))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

// Visualize maps every letter of the input to its shifted form.
func (c *Caesar) Visualize(text string) (*Visualization, error) {
	v := &Visualization{Family: FamilyCaesar}
	if alphabet.Normalize(text) == "" {
		return v, nil
	}
	out, _ := c.Encode(text)
	v.Result = out
	v.Steps = []string{fmt.Sprintf("shift each letter forward by %d (wrapping Z to A)", c.shift)}
	for i := 0; i < len(text); i++ {
		if !alphabet.IsLetter(text[i]) {
			continue
		}
		v.Mappings = append(v.Mappings, CharMapping{
			Index:  i,
			Plain:  string(text[i]),
			Key:    fmt.Sprintf("+%d", c.shift),
			Cipher: string(out[i]),
		})
	}
	return v, nil
}
