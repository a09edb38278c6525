package dao

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cipherlab-go/internal/storage"
)

// HistoryEntry is one saved exercise run: which cipher, which
// operation, and what came out. Key material is not stored.
type HistoryEntry struct {
	Username  string    `json:"username"`
	Family    string    `json:"family"`
	Operation string    `json:"operation"` // encode or decode
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Warnings  []string  `json:"warnings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryDAO stores exercise history per user
type HistoryDAO struct {
	store *storage.Store
	cap   int
}

// NewHistoryDAO creates a history DAO; cap bounds entries kept per user.
func NewHistoryDAO(store *storage.Store, cap int) *HistoryDAO {
	if cap <= 0 {
		cap = 200
	}
	return &HistoryDAO{store: store, cap: cap}
}

// historyKey orders entries by user then timestamp. Nanosecond
// timestamps keep keys unique enough for interactive use.
func historyKey(username string, t time.Time) string {
	return fmt.Sprintf("%s/%020d", username, t.UnixNano())
}

// Append saves one entry and trims the user's history to the cap.
func (d *HistoryDAO) Append(entry HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	key := historyKey(entry.Username, entry.CreatedAt)
	if err := d.store.SetJSON(storage.BucketHistory, key, entry); err != nil {
		return err
	}
	return d.trim(entry.Username)
}

// List returns the user's entries, oldest first.
func (d *HistoryDAO) List(username string) ([]HistoryEntry, error) {
	raw, err := d.store.GetPrefix(storage.BucketHistory, username+"/")
	if err != nil {
		return nil, err
	}
	entries := make([]HistoryEntry, 0, len(raw))
	for _, v := range raw {
		var e HistoryEntry
		if err := json.Unmarshal(v, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (d *HistoryDAO) trim(username string) error {
	entries, err := d.List(username)
	if err != nil {
		return err
	}
	for len(entries) > d.cap {
		e := entries[0]
		if err := d.store.Delete(storage.BucketHistory, historyKey(e.Username, e.CreatedAt)); err != nil {
			return err
		}
		entries = entries[1:]
	}
	return nil
}
