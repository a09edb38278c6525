package storage

import (
	"bytes"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set(BucketUsers, "alice", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(BucketUsers, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("Get = %q, want v1", got)
	}

	if err := s.Delete(BucketUsers, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.Get(BucketUsers, "alice")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("Get after delete = %q, want nil", got)
	}
}

func TestGetMissingBucket(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get([]byte("nope"), "k"); err == nil {
		t.Error("Get from unknown bucket succeeded")
	}
	if err := s.Set([]byte("nope"), "k", []byte("v")); err == nil {
		t.Error("Set to unknown bucket succeeded")
	}
}

func TestGetAll(t *testing.T) {
	s := newTestStore(t)
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(BucketPadKeys, k, []byte(k)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	all, err := s.GetAll(BucketPadKeys)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetAll = %d entries, want 3", len(all))
	}
}

func TestGetPrefix(t *testing.T) {
	s := newTestStore(t)
	pairs := map[string]string{
		"alice/001": "a1",
		"alice/002": "a2",
		"bob/001":   "b1",
	}
	for k, v := range pairs {
		if err := s.Set(BucketHistory, k, []byte(v)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	got, err := s.GetPrefix(BucketHistory, "alice/")
	if err != nil {
		t.Fatalf("GetPrefix: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetPrefix = %d values, want 2", len(got))
	}
	// Cursor order is key order.
	if string(got[0]) != "a1" || string(got[1]) != "a2" {
		t.Errorf("GetPrefix values = %q, %q", got[0], got[1])
	}

	none, err := s.GetPrefix(BucketHistory, "carol/")
	if err != nil {
		t.Fatalf("GetPrefix: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("GetPrefix for unknown user = %d values", len(none))
	}
}

func TestJSONHelpers(t *testing.T) {
	s := newTestStore(t)
	type record struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}

	if err := s.SetJSON(BucketUsers, "r", record{Name: "x", N: 7}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var out record
	if err := s.GetJSON(BucketUsers, "r", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Name != "x" || out.N != 7 {
		t.Errorf("GetJSON = %+v", out)
	}

	// Missing keys leave the target untouched.
	probe := record{Name: "keep"}
	if err := s.GetJSON(BucketUsers, "missing", &probe); err != nil {
		t.Fatalf("GetJSON missing: %v", err)
	}
	if probe.Name != "keep" {
		t.Errorf("missing key overwrote target: %+v", probe)
	}
}
