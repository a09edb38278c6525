package cipher

import (
	"github.com/cipherlab-go/internal/alphabet"
	apperrors "github.com/cipherlab-go/internal/errors"
)

// MinKeywordLen is the shortest keyword the keyword-driven families
// accept after normalization.
const MinKeywordLen = 3

// normalizeKeyword canonicalizes a keyword key and enforces the
// minimum length.
func normalizeKeyword(raw string) (string, error) {
	key := alphabet.Normalize(raw)
	if key == "" {
		return "", apperrors.NewInvalidKey("key has no usable characters")
	}
	if len(key) < MinKeywordLen {
		return "", apperrors.NewInvalidKeyf("key must have at least %d letters, got %d", MinKeywordLen, len(key))
	}
	return key, nil
}

// formatErrNotRectangular reports ciphertext that cannot fill the
// encode-time rectangle.
func formatErrNotRectangular(family Family, n, cols int) error {
	return apperrors.NewFormatErrorf("%s ciphertext length %d is not a multiple of key width %d", family, n, cols)
}

// requireText canonicalizes input text and rejects an empty result.
func requireText(raw string) (string, error) {
	text := alphabet.Normalize(raw)
	if text == "" {
		return "", apperrors.NewInvalidInput("text has no usable characters")
	}
	return text, nil
}
