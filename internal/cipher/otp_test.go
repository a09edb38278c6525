package cipher

import "testing"

func TestOTPVector(t *testing.T) {
	o, err := NewOTP("XMCKL")
	if err != nil {
		t.Fatalf("NewOTP: %v", err)
	}
	enc, err := o.Encode("HELLO")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc != "EQNVZ" {
		t.Errorf("Encode(HELLO) = %q, want EQNVZ", enc)
	}
	dec, err := o.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec != "HELLO" {
		t.Errorf("Decode = %q, want HELLO", dec)
	}
}

func TestOTPKeyNeverWraps(t *testing.T) {
	o, _ := NewOTP("XMCKL")
	if _, err := o.Encode("HELLOAGAIN"); err == nil {
		t.Error("Encode accepted text longer than the pad")
	}
	if _, err := o.Decode("EQNVZEQNVZ"); err == nil {
		t.Error("Decode accepted text longer than the pad")
	}
	// A longer pad is fine; only the prefix is consumed.
	long, _ := NewOTP("XMCKLQRSTUV")
	enc, err := long.Encode("HELLO")
	if err != nil {
		t.Fatalf("Encode with longer pad: %v", err)
	}
	if enc != "EQNVZ" {
		t.Errorf("Encode = %q, want EQNVZ", enc)
	}
}

func TestOTPEmptyPad(t *testing.T) {
	if _, err := NewOTP("123 !?"); err == nil {
		t.Error("accepted pad with no usable characters")
	}
}

func TestOTPAdvisories(t *testing.T) {
	skewed, _ := NewOTP("AAAAA")
	if len(skewed.Advisories()) == 0 {
		t.Error("single-letter pad not flagged as non-random")
	}
	spread, _ := NewOTP("XMCKL")
	if len(spread.Advisories()) != 0 {
		t.Errorf("spread pad flagged: %v", spread.Advisories())
	}
}

func TestOTPFingerprint(t *testing.T) {
	a := Fingerprint("XMCKL")
	if len(a) != 16 {
		t.Errorf("fingerprint length = %d, want 16 hex chars", len(a))
	}
	if Fingerprint("xmckl ") != a {
		t.Error("fingerprint not normalization-invariant")
	}
	if Fingerprint("XMCKM") == a {
		t.Error("different pads share a fingerprint")
	}
	o, _ := NewOTP("XMCKL")
	if o.Fingerprint() != a {
		t.Error("method and function fingerprints disagree")
	}
}

func TestCheckKeyReuse(t *testing.T) {
	seen := []string{Fingerprint("XMCKL"), Fingerprint("QRSTU")}
	if !CheckKeyReuse("xmckl", seen) {
		t.Error("reused pad not detected")
	}
	if CheckKeyReuse("ZZGHI", seen) {
		t.Error("fresh pad reported as reused")
	}
	if CheckKeyReuse("XMCKL", nil) {
		t.Error("reuse reported against empty history")
	}
}

func TestOTPKeyViews(t *testing.T) {
	o, _ := NewOTP("XMCKL")
	if got := o.KeyHex(); got != "170C020A0B" {
		t.Errorf("KeyHex = %q, want 170C020A0B", got)
	}
	if got := o.KeyBinary(); got != "10111 01100 00010 01010 01011" {
		t.Errorf("KeyBinary = %q", got)
	}
}

func TestOTPVisualize(t *testing.T) {
	o, _ := NewOTP("XMCKLQR")
	viz, err := o.Visualize("HELLO")
	if err != nil {
		t.Fatalf("Visualize: %v", err)
	}
	if viz.Result != "EQNVZ" {
		t.Errorf("Result = %q", viz.Result)
	}
	if viz.Keystream != "XMCKL" {
		t.Errorf("Keystream = %q, want the consumed prefix", viz.Keystream)
	}
	if len(viz.Mappings) != 5 {
		t.Errorf("Mappings len = %d, want 5", len(viz.Mappings))
	}

	short, _ := NewOTP("XMC")
	if _, err := short.Visualize("HELLO"); err == nil {
		t.Error("Visualize accepted text longer than the pad")
	}
}
