package session

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"TollSentinel/internal/model"
)

// TTL is how long a persisted session stays usable. The portal drops idle
// sessions server-side well before this, so the comparison is strict: a
// session aged exactly TTL is already expired.
const TTL = 600 * time.Second

// Store persists the authenticated portal session between invocations.
// There is no cross-process locking; overlapping invocations race on the
// file and the last writer wins. Accepted for a single-user tool.
type Store struct {
	filePath string
	now      func() time.Time
}

// NewStore creates a Store backed by the given file path.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath, now: time.Now}
}

// Load returns the cached session, or nil when no usable session exists.
// Read and decode failures are non-fatal and simply force a fresh login.
func (s *Store) Load() *model.Session {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read session file: %v", err)
		}
		return nil
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("[WARN] session file corrupt, discarding: %v", err)
		s.Invalidate()
		return nil
	}
	if sess.Age(s.now()) >= TTL {
		return nil
	}
	return &sess
}

// Save atomically overwrites the persisted session.
func (s *Store) Save(sess *model.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

// Invalidate deletes the persisted session.
func (s *Store) Invalidate() {
	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] remove session file: %v", err)
	}
}
