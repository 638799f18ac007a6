package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/config"
)

func TestLoad_Fresh(t *testing.T) {
	tests := []struct {
		name  string
		store *MemoryStore
	}{
		{"missing", NewMemoryStore(nil)},
		{"malformed", NewMemoryStore([]byte("{oops"))},
		{"read error", &MemoryStore{Err: errors.New("disk on fire")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Load(tt.store)
			require.NotNil(t, st)
			assert.Equal(t, 0, st.ClearedCount())
			assert.False(t, st.SecretUnlocked())
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := NewMemoryStore(nil)
	st := progress.New()
	st.MarkCleared(1)
	st.MarkCleared(2)
	st.MarkCleared(3)
	st.UnlockSecret()

	require.NoError(t, Save(store, st))
	assert.JSONEq(t, `{"clearedStages":[1,2,3],"secretUnlocked":true}`, string(store.Bytes()))

	loaded := Load(store)
	assert.Equal(t, st.Snapshot(), loaded.Snapshot())
}

func TestSave_WriteError(t *testing.T) {
	store := &MemoryStore{Err: errors.New("quota exceeded")}
	err := Save(store, progress.New())
	assert.Error(t, err)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	fs := NewFileStore(path)

	_, err := fs.Read()
	assert.ErrorIs(t, err, ErrNotFound)

	st := progress.New()
	st.MarkCleared(4)
	require.NoError(t, Save(fs, st))

	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded := Load(fs)
	assert.True(t, loaded.IsCleared(4))
}

func TestOpen_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	s, err := Open(config.SaveConfig{Key: "k", File: "f.json"}, path)
	require.NoError(t, err)

	fs, ok := s.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}
