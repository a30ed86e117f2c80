package tokenstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	backend := NewFileBackend(dir)

	_, err := backend.Get(KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Set(KeyToken, "abc"))
	require.NoError(t, backend.Set(KeyTheme, "dark"))

	got, err := backend.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	// a fresh backend over the same directory sees the persisted values
	reopened := NewFileBackend(dir)
	got, err = reopened.Get(KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	require.NoError(t, reopened.Delete(KeyToken))
	require.NoError(t, reopened.Delete(KeyToken))
	_, err = backend.Get(KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackend_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}

	dir := filepath.Join(t.TempDir(), "home")
	backend := NewFileBackend(dir)
	require.NoError(t, backend.Set(KeyToken, "abc"))

	info, err := os.Stat(backend.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{broken"), 0600))

	backend := NewFileBackend(dir)
	_, err := backend.Get(KeyToken)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	store := New(backend, nil)
	_, ok := store.Token()
	assert.False(t, ok)
}
