package errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestConstructorsCarryStatus(t *testing.T) {
	testCases := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
	}{
		{"invalid input", NewInvalidInput("bad"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"invalid key", NewInvalidKey("bad"), ErrCodeInvalidKey, http.StatusUnprocessableEntity},
		{"format", NewFormatError("bad"), ErrCodeFormat, http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("bad"), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"not found", NewNotFound("bad"), ErrCodeNotFound, http.StatusNotFound},
		{"internal", NewInternal("bad"), ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("code = %d, want %d", tc.err.Code, tc.code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("status = %d, want %d", tc.err.HTTPStatus, tc.status)
			}
			if ToHTTPStatus(tc.err) != tc.status {
				t.Errorf("ToHTTPStatus = %d", ToHTTPStatus(tc.err))
			}
		})
	}
}

func TestFormattedConstructors(t *testing.T) {
	err := NewInvalidKeyf("key must have at least %d letters", 3)
	if err.Message != "key must have at least 3 letters" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalWithCause("write failed", cause)
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, cause missing", err.Error())
	}
}

func TestToHTTPStatusPlainError(t *testing.T) {
	if got := ToHTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("ToHTTPStatus = %d, want 500", got)
	}
}

func TestToJSON(t *testing.T) {
	data := string(ToJSON(NewNotFound("missing")))
	if !strings.Contains(data, "404") || !strings.Contains(data, "missing") {
		t.Errorf("ToJSON = %s", data)
	}
	plain := string(ToJSON(errors.New("boom")))
	if !strings.Contains(plain, "500") || !strings.Contains(plain, "boom") {
		t.Errorf("ToJSON plain = %s", plain)
	}
}
