package dao

import (
	"time"

	"github.com/cipherlab-go/internal/storage"
)

// PadKeyRecord marks one sighting of a one-time pad key fingerprint.
// The key itself is never stored.
type PadKeyRecord struct {
	Fingerprint string    `json:"fingerprint"`
	Username    string    `json:"username"`
	Uses        int       `json:"uses"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
}

// PadKeyDAO backs the OTP key-reuse advisory with a persistent
// fingerprint log. It flags reuse; it cannot prevent it.
type PadKeyDAO struct {
	store *storage.Store
}

// NewPadKeyDAO creates a pad key DAO
func NewPadKeyDAO(store *storage.Store) *PadKeyDAO {
	return &PadKeyDAO{store: store}
}

// Record notes a use of the fingerprint and returns the updated record.
// Uses > 1 means the key has been seen before: the reuse signal.
func (d *PadKeyDAO) Record(fingerprint, username string) (*PadKeyRecord, error) {
	var rec PadKeyRecord
	if err := d.store.GetJSON(storage.BucketPadKeys, fingerprint, &rec); err != nil {
		return nil, err
	}
	now := time.Now()
	if rec.Fingerprint == "" {
		rec = PadKeyRecord{
			Fingerprint: fingerprint,
			Username:    username,
			FirstSeen:   now,
		}
	}
	rec.Uses++
	rec.LastSeen = now
	if err := d.store.SetJSON(storage.BucketPadKeys, fingerprint, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get looks up a fingerprint; nil when never seen.
func (d *PadKeyDAO) Get(fingerprint string) (*PadKeyRecord, error) {
	var rec PadKeyRecord
	if err := d.store.GetJSON(storage.BucketPadKeys, fingerprint, &rec); err != nil {
		return nil, err
	}
	if rec.Fingerprint == "" {
		return nil, nil
	}
	return &rec, nil
}
