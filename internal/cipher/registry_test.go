package cipher

import "testing"

func TestRegistryCoversAllFamilies(t *testing.T) {
	want := []Family{
		FamilyCaesar, FamilyVigenere, FamilyBeaufort, FamilyAutokey,
		FamilyPlayfair, FamilyHill,
		FamilyRailFence, FamilyColumnar, FamilyMyszkowski, FamilyDouble,
		FamilySuper, FamilyOTP, FamilyLCG,
	}
	for _, f := range want {
		if !IsRegistered(f) {
			t.Errorf("family %s not registered", f)
		}
	}
	if got := len(Families()); got != len(want) {
		t.Errorf("Families() = %d entries, want %d", got, len(want))
	}
}

func TestFamiliesSorted(t *testing.T) {
	fams := Families()
	for i := 1; i < len(fams); i++ {
		if fams[i-1] >= fams[i] {
			t.Fatalf("Families() not sorted: %v", fams)
		}
	}
}

func TestNewDispatch(t *testing.T) {
	testCases := []struct {
		family Family
		spec   KeySpec
	}{
		{FamilyCaesar, KeySpec{Shift: 3}},
		{FamilyVigenere, KeySpec{Keyword: "LEMON"}},
		{FamilyBeaufort, KeySpec{Keyword: "FORTIFICATION"}},
		{FamilyAutokey, KeySpec{Keyword: "QUEENLY"}},
		{FamilyPlayfair, KeySpec{Keyword: "MONARCHY"}},
		{FamilyHill, KeySpec{Matrix: "3,3,2,5"}},
		{FamilyRailFence, KeySpec{Rails: 3}},
		{FamilyColumnar, KeySpec{Keyword: "KEY"}},
		{FamilyMyszkowski, KeySpec{Keyword: "BANANA"}},
		{FamilyDouble, KeySpec{Keyword: "KEY", Keyword2: "CARGO"}},
		{FamilySuper, KeySpec{Keyword: "LEMON", Keyword2: "KEY"}},
		{FamilyOTP, KeySpec{Pad: "XMCKLQRSTUVWXYZ"}},
		{FamilyLCG, KeySpec{Preset: "classroom"}},
	}
	for _, tc := range testCases {
		c, err := New(tc.family, tc.spec)
		if err != nil {
			t.Errorf("New(%s): %v", tc.family, err)
			continue
		}
		if c.Family() != tc.family {
			t.Errorf("New(%s).Family() = %s", tc.family, c.Family())
		}
	}
}

func TestNewUnknownFamily(t *testing.T) {
	if _, err := New("rot13", KeySpec{}); err == nil {
		t.Error("accepted unknown family")
	}
}

func TestNewPropagatesKeyErrors(t *testing.T) {
	if _, err := New(FamilyVigenere, KeySpec{Keyword: "ab"}); err == nil {
		t.Error("short keyword accepted through registry")
	}
	if _, err := New(FamilyHill, KeySpec{Matrix: "2,4,1,2"}); err == nil {
		t.Error("singular matrix accepted through registry")
	}
	if _, err := New(FamilyLCG, KeySpec{Modulus: 1, Multiplier: 1}); err == nil {
		t.Error("bad LCG parameters accepted through registry")
	}
}
