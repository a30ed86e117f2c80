package tokenstore

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/log"
)

func newTestStore(t *testing.T) (*Store, *MemoryBackend, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelDebug, Format: log.FormatText, Output: log.NewOutput(&buf)})
	backend := NewMemoryBackend()
	return New(backend, logger), backend, &buf
}

func TestStore_TokenLifecycle(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, ok := store.Token()
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())

	store.SetToken("abc")
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.True(t, store.IsAuthenticated())

	store.RemoveToken()
	assert.False(t, store.IsAuthenticated())
}

func TestStore_UserLifecycle(t *testing.T) {
	store, backend, _ := newTestStore(t)

	store.SetUser(domain.UserRecord{ID: "1", Name: "Ada", Email: "ada@example.com"})

	raw, ok := backend.Raw(KeyUser)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"1","name":"Ada","email":"ada@example.com"}`, raw)

	user, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "Ada", user.Name)

	store.RemoveUser()
	_, ok = store.User()
	assert.False(t, ok)
}

func TestStore_SetUserLastWriteWins(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.SetUser(domain.UserRecord{Name: "First"})
	store.SetUser(domain.UserRecord{Name: "Second"})

	user, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "Second", user.Name)
}

func TestStore_ClearKeepsPreferences(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.SetToken("abc")
	store.SetUser(domain.UserRecord{Name: "Ada"})
	store.SetPreference(KeyTheme, "dark")

	store.Clear()

	assert.False(t, store.IsAuthenticated())
	_, ok := store.User()
	assert.False(t, ok)
	theme, ok := store.Preference(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestStore_CorruptUserIsAbsent(t *testing.T) {
	store, backend, logs := newTestStore(t)
	require.NoError(t, backend.Set(KeyUser, "{not json"))

	user, ok := store.User()
	assert.False(t, ok)
	assert.Nil(t, user)
	assert.Contains(t, logs.String(), "storage read failed")
	assert.Contains(t, logs.String(), "STORE-001")
}

func TestStore_BackendFailuresDegrade(t *testing.T) {
	store, backend, logs := newTestStore(t)
	store.SetToken("abc")

	backend.GetErr = errors.New("quota exceeded")
	backend.SetErr = errors.New("quota exceeded")
	backend.DeleteErr = errors.New("quota exceeded")

	assert.NotPanics(t, func() {
		store.SetToken("def")
		store.SetUser(domain.UserRecord{Name: "Ada"})
		store.Clear()
	})

	_, ok := store.Token()
	assert.False(t, ok, "an unreadable token must be treated as absent")
	assert.False(t, store.IsAuthenticated())
	assert.Contains(t, logs.String(), "storage write failed")
	assert.Contains(t, logs.String(), "storage delete failed")

	backend.GetErr = nil
	raw, _ := backend.Raw(KeyToken)
	assert.Equal(t, "abc", raw, "failed writes leave the previous value in place")
}

func TestStore_EmptyTokenIsAbsent(t *testing.T) {
	store, backend, _ := newTestStore(t)
	require.NoError(t, backend.Set(KeyToken, ""))

	assert.False(t, store.IsAuthenticated())
}
