package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TollSentinel/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	sess := &model.Session{
		Cookies: []model.Cookie{
			{Name: "sid", Value: "abc123", Domain: "portal.example.com", Path: "/"},
			{Name: "aux", Value: "xyz", Domain: "portal.example.com", Path: "/"},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Save(sess))

	got := s.Load()
	require.NotNil(t, got)
	assert.Equal(t, sess.Cookies, got.Cookies)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.Load())
}

func TestStore_ExpiryIsStrict(t *testing.T) {
	s := newTestStore(t)
	created := time.Now()
	require.NoError(t, s.Save(&model.Session{
		Cookies:   []model.Cookie{{Name: "sid", Value: "v", Domain: "d", Path: "/"}},
		CreatedAt: created,
	}))

	// Just inside the TTL: usable.
	s.now = func() time.Time { return created.Add(TTL - time.Second) }
	assert.NotNil(t, s.Load())

	// Aged exactly TTL: already expired.
	s.now = func() time.Time { return created.Add(TTL) }
	assert.Nil(t, s.Load())

	s.now = func() time.Time { return created.Add(TTL + time.Hour) }
	assert.Nil(t, s.Load())
}

func TestStore_CorruptFileInvalidated(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.filePath, []byte("{not json"), 0600))

	assert.Nil(t, s.Load())

	// The corrupt file must be gone so the next run starts clean.
	_, err := os.Stat(s.filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(&model.Session{
		Cookies:   []model.Cookie{{Name: "sid", Value: "old", Domain: "d", Path: "/"}},
		CreatedAt: time.Now(),
	}))
	require.NoError(t, s.Save(&model.Session{
		Cookies:   []model.Cookie{{Name: "sid", Value: "new", Domain: "d", Path: "/"}},
		CreatedAt: time.Now(),
	}))

	got := s.Load()
	require.NotNil(t, got)
	require.Len(t, got.Cookies, 1)
	assert.Equal(t, "new", got.Cookies[0].Value)
}

func TestStore_Invalidate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(&model.Session{CreatedAt: time.Now()}))
	s.Invalidate()
	assert.Nil(t, s.Load())

	// Invalidating an already-missing file is fine.
	s.Invalidate()
}
