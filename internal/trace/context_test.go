package trace

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if !strings.HasPrefix(id, "req-") || len(id) != 10 {
		t.Errorf("request ID = %q, want req- plus 6 hex chars", id)
	}
	if GenerateRequestID() == id {
		t.Error("consecutive request IDs collide")
	}
}

func TestExtractFamilyTag(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"/api/cipher/vigenere/encode", "vigenere:encode"},
		{"/api/cipher/otp/visualize", "otp:visualize"},
		{"/api/analyze", "analyze"},
		{"/api/analyze/lcg", "analyze:lcg"},
		{"/api/lcg/presets", "lcg:presets"},
		{"/health", "health"},
		{"/", "/"},
	}
	for _, tc := range testCases {
		if got := ExtractFamilyTag(tc.path); got != tc.want {
			t.Errorf("ExtractFamilyTag(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if GetRequestID(ctx) != "" || GetFamilyTag(ctx) != "" {
		t.Error("empty context carries values")
	}
	ctx = WithRequestID(ctx, "req-abc123")
	ctx = WithFamilyTag(ctx, "caesar:encode")
	if got := GetRequestID(ctx); got != "req-abc123" {
		t.Errorf("request ID = %q", got)
	}
	if got := GetFamilyTag(ctx); got != "caesar:encode" {
		t.Errorf("family tag = %q", got)
	}
}
