package store

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

// The kv_entries table is a flat, per-user key-value space holding one
// JSON-encoded record per key. The key identifiers match the browser
// client's localStorage keys so previously exported data stays loadable.
//
// Failure semantics: a failed read (missing row, SQL error, unparseable
// value) is reported as "absent" and a failed write is logged and
// swallowed. Callers keep their in-memory state as the source of truth
// for the session, so the user still sees the change even if it will not
// survive a restart.

// GetKV fetches the raw JSON value stored under key for a user. The
// second return value is false when no usable value exists.
func (s *Store) GetKV(userID int64, key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_entries WHERE user_id = ? AND key = ?", userID, key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("kv: failed to read %q for user %d: %v", key, userID, err)
		}
		return nil, false
	}
	if !json.Valid([]byte(value)) {
		log.Printf("kv: discarding corrupt value for %q (user %d)", key, userID)
		return nil, false
	}
	return []byte(value), true
}

// SetKV stores value under key for a user, overwriting any prior value.
// Write failures are logged, never returned.
func (s *Store) SetKV(userID int64, key string, value []byte) {
	query := `
		INSERT INTO kv_entries (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, userID, key, string(value), time.Now()); err != nil {
		log.Printf("kv: failed to write %q for user %d: %v", key, userID, err)
	}
}

// DeleteKV removes a stored record entirely.
func (s *Store) DeleteKV(userID int64, key string) {
	if _, err := s.db.Exec("DELETE FROM kv_entries WHERE user_id = ? AND key = ?", userID, key); err != nil {
		log.Printf("kv: failed to delete %q for user %d: %v", key, userID, err)
	}
}

// GetJSON unmarshals the value stored under key into out. It returns
// false, leaving out untouched, when the key is absent or the stored
// value does not decode into out's shape.
func (s *Store) GetJSON(userID int64, key string, out interface{}) bool {
	raw, ok := s.GetKV(userID, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("kv: failed to decode %q for user %d: %v", key, userID, err)
		return false
	}
	return true
}

// SetJSON marshals v and stores it under key. Serialization failures are
// logged and swallowed like write failures.
func (s *Store) SetJSON(userID int64, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("kv: failed to encode %q for user %d: %v", key, userID, err)
		return
	}
	s.SetKV(userID, key, raw)
}
