package cipher

import (
	"bytes"
	"testing"
)

func TestLCGClassroomKeystream(t *testing.T) {
	l, err := NewLCGFromPreset("classroom", 0)
	if err != nil {
		t.Fatalf("NewLCGFromPreset: %v", err)
	}
	// X(n+1) = (21*X + 5) mod 256 from seed 7: 152, 125, 70, 195.
	want := []byte{152, 125, 70, 195}
	if got := l.Keystream(4); !bytes.Equal(got, want) {
		t.Errorf("Keystream(4) = %v, want %v", got, want)
	}
}

func TestLCGEncodeHex(t *testing.T) {
	l, _ := NewLCGFromPreset("classroom", 0)
	enc, err := l.Encode("HI")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc != "d034" {
		t.Errorf("Encode(HI) = %q, want d034", enc)
	}
	dec, err := l.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec != "HI" {
		t.Errorf("Decode = %q, want HI", dec)
	}
}

func TestLCGRoundTripArbitraryBytes(t *testing.T) {
	// Byte-oriented: case, spaces, and punctuation all survive.
	l, _ := NewLCGFromPreset("ansic", 0)
	plain := "Attack at dawn! 123"
	enc, err := l.Encode(plain)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := l.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec != plain {
		t.Errorf("round trip = %q, want %q", dec, plain)
	}
}

func TestLCGSeedOverride(t *testing.T) {
	def, _ := NewLCGFromPreset("classroom", 0)
	over, _ := NewLCGFromPreset("classroom", 99)
	if def.Params().Seed != 7 {
		t.Errorf("default seed = %d, want 7", def.Params().Seed)
	}
	if over.Params().Seed != 99 {
		t.Errorf("override seed = %d, want 99", over.Params().Seed)
	}
	a, _ := def.Encode("HELLO")
	b, _ := over.Encode("HELLO")
	if a == b {
		t.Error("different seeds produced identical ciphertext")
	}
}

func TestLCGInvalidHex(t *testing.T) {
	l, _ := NewLCGFromPreset("classroom", 0)
	for _, ct := range []string{"zz", "abc", "0x41"} {
		if _, err := l.Decode(ct); err == nil {
			t.Errorf("Decode(%q) accepted invalid hex", ct)
		}
	}
}

func TestLCGParamValidation(t *testing.T) {
	testCases := []struct {
		name   string
		params LCGParams
	}{
		{"modulus too small", LCGParams{Seed: 1, Multiplier: 1, Increment: 0, Modulus: 1}},
		{"zero multiplier", LCGParams{Seed: 1, Multiplier: 0, Increment: 0, Modulus: 256}},
		{"seed out of range", LCGParams{Seed: 256, Multiplier: 21, Increment: 5, Modulus: 256}},
		{"multiplier out of range", LCGParams{Seed: 1, Multiplier: 300, Increment: 5, Modulus: 256}},
		{"increment out of range", LCGParams{Seed: 1, Multiplier: 21, Increment: 256, Modulus: 256}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewLCG(tc.params); err == nil {
				t.Errorf("NewLCG accepted %+v", tc.params)
			}
		})
	}
}

func TestLCGPresets(t *testing.T) {
	presets := Presets()
	if len(presets) != 5 {
		t.Fatalf("presets = %d, want 5", len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1].Name >= presets[i].Name {
			t.Error("presets not sorted by name")
		}
	}
	for _, name := range []string{"ansic", "minstd", "numerical-recipes", "randu", "classroom"} {
		p, ok := PresetByName(name)
		if !ok {
			t.Errorf("preset %q missing", name)
			continue
		}
		if _, err := NewLCG(p.Params); err != nil {
			t.Errorf("preset %q has invalid parameters: %v", name, err)
		}
	}
	if _, err := NewLCGFromPreset("mystery", 0); err == nil {
		t.Error("accepted unknown preset")
	}
}

func TestLCGAdvisories(t *testing.T) {
	randu, _ := NewLCGFromPreset("randu", 0)
	if len(randu.Advisories()) == 0 {
		t.Error("randu not flagged")
	}
	tiny, _ := NewLCG(LCGParams{Seed: 1, Multiplier: 5, Increment: 3, Modulus: 64})
	if len(tiny.Advisories()) == 0 {
		t.Error("sub-256 modulus not flagged")
	}
	classroom, _ := NewLCGFromPreset("classroom", 0)
	if len(classroom.Advisories()) != 0 {
		t.Errorf("classroom flagged: %v", classroom.Advisories())
	}
}

func TestLCGVisualize(t *testing.T) {
	l, _ := NewLCGFromPreset("classroom", 0)
	viz, err := l.Visualize("HI")
	if err != nil {
		t.Fatalf("Visualize: %v", err)
	}
	if viz.Result != "d034" {
		t.Errorf("Result = %q, want d034", viz.Result)
	}
	if viz.Keystream != "987d" {
		t.Errorf("Keystream = %q, want 987d", viz.Keystream)
	}
	if len(viz.Mappings) != 2 {
		t.Errorf("Mappings len = %d, want 2", len(viz.Mappings))
	}
}
