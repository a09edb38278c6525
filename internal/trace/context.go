package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	familyTagKey contextKey = "family_tag"
)

// GenerateRequestID generates a unique request ID in format "req-XXXXXX"
func GenerateRequestID() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "req-000000"
	}
	return "req-" + hex.EncodeToString(b)
}

// ExtractFamilyTag pulls the cipher family out of an API path.
// For /api/cipher/vigenere/encode -> "vigenere:encode"
// For /api/analyze -> "analyze"
func ExtractFamilyTag(urlPath string) string {
	parts := strings.Split(strings.Trim(urlPath, "/"), "/")
	if len(parts) >= 4 && parts[0] == "api" && parts[1] == "cipher" {
		return parts[2] + ":" + parts[3]
	}
	if len(parts) >= 2 && parts[0] == "api" {
		return strings.Join(parts[1:], ":")
	}
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "/"
}

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// WithFamilyTag adds the cipher family tag to context
func WithFamilyTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, familyTagKey, tag)
}

// GetFamilyTag retrieves the cipher family tag from context
func GetFamilyTag(ctx context.Context) string {
	if v := ctx.Value(familyTagKey); v != nil {
		return v.(string)
	}
	return ""
}
