package cipher

import (
	"sort"
	"sync"

	apperrors "github.com/cipherlab-go/internal/errors"
)

// Factory creates a cipher instance from a key spec
type Factory func(spec KeySpec) (Cipher, error)

// registry holds registered cipher factories
var (
	registryMu sync.RWMutex
	registry   = make(map[Family]Factory)
)

func init() {
	// Register built-in cipher families
	Register(FamilyCaesar, func(spec KeySpec) (Cipher, error) {
		return NewCaesar(spec.Shift)
	})
	Register(FamilyVigenere, func(spec KeySpec) (Cipher, error) {
		return NewVigenere(spec.Keyword)
	})
	Register(FamilyBeaufort, func(spec KeySpec) (Cipher, error) {
		return NewBeaufort(spec.Keyword)
	})
	Register(FamilyAutokey, func(spec KeySpec) (Cipher, error) {
		return NewAutokey(spec.Keyword)
	})
	Register(FamilyPlayfair, func(spec KeySpec) (Cipher, error) {
		return NewPlayfair(spec.Keyword)
	})
	Register(FamilyHill, func(spec KeySpec) (Cipher, error) {
		return NewHillFromCSV(spec.Matrix)
	})
	Register(FamilyRailFence, func(spec KeySpec) (Cipher, error) {
		return NewRailFence(spec.Rails)
	})
	Register(FamilyColumnar, func(spec KeySpec) (Cipher, error) {
		return NewColumnar(spec.Keyword)
	})
	Register(FamilyMyszkowski, func(spec KeySpec) (Cipher, error) {
		return NewMyszkowski(spec.Keyword)
	})
	Register(FamilyDouble, func(spec KeySpec) (Cipher, error) {
		return NewDoubleColumnar(spec.Keyword, spec.Keyword2)
	})
	Register(FamilySuper, func(spec KeySpec) (Cipher, error) {
		return NewSuper(spec.Keyword, spec.Keyword2, spec.Order)
	})
	Register(FamilyOTP, func(spec KeySpec) (Cipher, error) {
		return NewOTP(spec.Pad)
	})
	Register(FamilyLCG, func(spec KeySpec) (Cipher, error) {
		if spec.Preset != "" {
			return NewLCGFromPreset(spec.Preset, spec.Seed)
		}
		return NewLCG(LCGParams{
			Seed:       spec.Seed,
			Multiplier: spec.Multiplier,
			Increment:  spec.Increment,
			Modulus:    spec.Modulus,
		})
	})
}

// Register adds a cipher factory to the registry
func Register(family Family, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[family] = factory
}

// New creates a cipher for the given family using the registry
func New(family Family, spec KeySpec) (Cipher, error) {
	registryMu.RLock()
	factory, ok := registry[family]
	registryMu.RUnlock()

	if !ok {
		return nil, apperrors.NewInvalidInputf("unknown cipher family: %s", family)
	}
	return factory(spec)
}

// Families returns all registered families, sorted for stable output
func Families() []Family {
	registryMu.RLock()
	defer registryMu.RUnlock()

	families := make([]Family, 0, len(registry))
	for f := range registry {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// IsRegistered checks if a cipher family is registered
func IsRegistered(family Family) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[family]
	return ok
}
