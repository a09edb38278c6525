package cipher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cipherlab-go/internal/alphabet"
	"github.com/cipherlab-go/internal/analysis"
	apperrors "github.com/cipherlab-go/internal/errors"
	"github.com/cipherlab-go/internal/modmath"
)

// RandomnessThreshold is the chi-squared score above which a pad key is
// flagged as "not random enough". Empirical, inherited from classroom
// use; a heuristic, not a statistical test at a stated significance.
const RandomnessThreshold = 40.0

// OTP is the one-time pad: the Vigenère formula with a strict contract.
// The key must be at least as long as the plaintext and is never
// repeated or extended; a shorter key is a hard error. With a truly
// random, never-reused key this is the only cipher here with a real
// security property.
type OTP struct {
	key string
}

// NewOTP creates a one-time pad from key text. Length against the
// plaintext is checked per call, since the pad does not know the text
// yet.
func NewOTP(pad string) (*OTP, error) {
	key := alphabet.Normalize(pad)
	if key == "" {
		return nil, apperrors.NewInvalidKey("pad key has no usable characters")
	}
	return &OTP{key: key}, nil
}

// Family returns the cipher family
func (o *OTP) Family() Family { return FamilyOTP }

// Key returns the canonical pad key.
func (o *OTP) Key() string { return o.key }

// Encode applies C = (P + K) mod 26 with no key wrap-around.
func (o *OTP) Encode(text string) (string, error) {
	t, err := o.checkLength(text)
	if err != nil {
		return "", err
	}
	return o.shift(t, 1), nil
}

// Decode applies P = (C - K) mod 26.
func (o *OTP) Decode(text string) (string, error) {
	t, err := o.checkLength(text)
	if err != nil {
		return "", err
	}
	return o.shift(t, -1), nil
}

func (o *OTP) checkLength(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	if len(o.key) < len(t) {
		return "", apperrors.NewInvalidKeyf("pad key is shorter than the text (%d < %d); a one-time pad never wraps", len(o.key), len(t))
	}
	return t, nil
}

func (o *OTP) shift(canonical string, sign int) string {
	var b strings.Builder
	b.Grow(len(canonical))
	for i := 0; i < len(canonical); i++ {
		k := alphabet.Index(o.key[i])
		p := alphabet.Index(canonical[i])
		b.WriteByte(alphabet.Letter(modmath.Mod(p+sign*k, alphabet.Size)))
	}
	return b.String()
}

// Advisories flags keys that fail the uniformity heuristic. Never an
// error: a skewed key still produces a mathematically valid transform,
// it just is not a one-time pad in spirit.
func (o *OTP) Advisories() []string {
	chi := analysis.ChiSquaredLetters(o.key)
	if chi >= RandomnessThreshold {
		return []string{fmt.Sprintf("pad key looks non-random (chi-squared %.1f >= %.0f); perfect secrecy needs a uniformly random key", chi, RandomnessThreshold)}
	}
	return nil
}

// Fingerprint returns a short stable digest of the pad key, used to
// recognize reuse without storing the key itself.
func (o *OTP) Fingerprint() string {
	return Fingerprint(o.key)
}

// Fingerprint digests canonical pad key text.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(alphabet.Normalize(key)))
	return hex.EncodeToString(sum[:8])
}

// CheckKeyReuse reports whether the key's fingerprint appears in a list
// of previously seen fingerprints. Advisory only: reuse cannot be
// prevented here, merely flagged.
func CheckKeyReuse(key string, seen []string) bool {
	fp := Fingerprint(key)
	for _, s := range seen {
		if s == fp {
			return true
		}
	}
	return false
}

// KeyHex renders the pad key's letter values as two-digit hex.
func (o *OTP) KeyHex() string {
	var b strings.Builder
	for i := 0; i < len(o.key); i++ {
		fmt.Fprintf(&b, "%02X", alphabet.Index(o.key[i]))
	}
	return b.String()
}

// KeyBinary renders the pad key's letter values as 5-bit binary groups.
func (o *OTP) KeyBinary() string {
	parts := make([]string, len(o.key))
	for i := 0; i < len(o.key); i++ {
		parts[i] = fmt.Sprintf("%05b", alphabet.Index(o.key[i]))
	}
	return strings.Join(parts, " ")
}

// Visualize shows the pad keystream and per-letter mappings.
func (o *OTP) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyOTP}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	if len(o.key) < len(t) {
		// Visualize never fails harder than Encode would; mirror its error.
		return viz, apperrors.NewInvalidKeyf("pad key is shorter than the text (%d < %d)", len(o.key), len(t))
	}
	out := o.shift(t, 1)
	viz.Result = out
	viz.Keystream = o.key[:len(t)]
	for i := 0; i < len(t); i++ {
		viz.Mappings = append(viz.Mappings, CharMapping{
			Index:  i,
			Plain:  string(t[i]),
			Key:    string(o.key[i]),
			Cipher: string(out[i]),
		})
	}
	return viz, nil
}
