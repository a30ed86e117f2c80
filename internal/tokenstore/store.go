// Package tokenstore persists the session token, the cached user record and
// the UI preferences. Every Store operation is best-effort: backend failures
// are logged and the value is treated as absent.
package tokenstore

import (
	"encoding/json"
	stderrors "errors"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
)

// Storage keys
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Store is the token store.
type Store struct {
	backend Backend
	logger  *log.Logger
}

// New creates a Store over backend. A nil logger uses the default logger.
func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		backend: backend,
		logger:  logger.WithComponent("tokenstore"),
	}
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) {
	s.set(KeyToken, token)
}

// Token returns the persisted token.
func (s *Store) Token() (string, bool) {
	v, ok := s.get(KeyToken)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// RemoveToken deletes the token.
func (s *Store) RemoveToken() {
	s.delete(KeyToken)
}

// SetUser persists the user record as JSON.
func (s *Store) SetUser(user domain.UserRecord) {
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.WithError(errors.Wrap(errors.ErrCodeStorageWrite, "encode user", err)).Warn("storage write failed", "key", KeyUser)
		return
	}
	s.set(KeyUser, string(data))
}

// User returns the persisted user record. A record that fails to decode
// counts as absent.
func (s *Store) User() (*domain.UserRecord, bool) {
	raw, ok := s.get(KeyUser)
	if !ok {
		return nil, false
	}

	var user domain.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.WithError(errors.Wrap(errors.ErrCodeStorageRead, "decode user", err)).Warn("storage read failed", "key", KeyUser)
		return nil, false
	}
	return &user, true
}

// RemoveUser deletes the user record.
func (s *Store) RemoveUser() {
	s.delete(KeyUser)
}

// IsAuthenticated reports token presence only. It says nothing about
// whether the token is still accepted by the server.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear removes both token and user. Preferences survive.
func (s *Store) Clear() {
	s.RemoveToken()
	s.RemoveUser()
}

// SetPreference stores a UI preference such as theme or language.
func (s *Store) SetPreference(key, value string) {
	s.set(key, value)
}

// Preference returns a stored UI preference.
func (s *Store) Preference(key string) (string, bool) {
	v, ok := s.get(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) get(key string) (string, bool) {
	v, err := s.backend.Get(key)
	if err == nil {
		return v, true
	}
	if stderrors.Is(err, ErrNotFound) {
		return "", false
	}

	code := errors.ErrCodeStorageRead
	if stderrors.Is(err, ErrDecrypt) {
		code = errors.ErrCodeStorageDecrypt
	}
	s.logger.WithError(errors.Wrap(code, "read "+key, err)).Warn("storage read failed", "key", key)
	return "", false
}

func (s *Store) set(key, value string) {
	if err := s.backend.Set(key, value); err != nil {
		s.logger.WithError(errors.Wrap(errors.ErrCodeStorageWrite, "write "+key, err)).Warn("storage write failed", "key", key)
	}
}

func (s *Store) delete(key string) {
	if err := s.backend.Delete(key); err != nil {
		s.logger.WithError(errors.Wrap(errors.ErrCodeStorageWrite, "delete "+key, err)).Warn("storage delete failed", "key", key)
	}
}
