package tokenstore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltKey        = "_salt"
	saltSize       = 16
	kdfIterations  = 100000
	derivedKeySize = 32
)

// ErrDecrypt is returned when a stored value cannot be decrypted, usually
// because the passphrase changed.
var ErrDecrypt = errors.New("cannot decrypt stored value")

// EncryptedBackend encrypts values with AES-GCM before handing them to the
// wrapped backend. The key is derived from a passphrase with PBKDF2-SHA256
// and a random salt kept unencrypted in the wrapped backend.
type EncryptedBackend struct {
	inner Backend
	key   []byte
}

// NewEncryptedBackend wraps inner. The salt is created on first use.
func NewEncryptedBackend(inner Backend, passphrase string) (*EncryptedBackend, error) {
	if passphrase == "" {
		return nil, errors.New("encrypted storage requires a passphrase")
	}

	salt, err := loadOrCreateSalt(inner)
	if err != nil {
		return nil, err
	}

	return &EncryptedBackend{
		inner: inner,
		key:   pbkdf2.Key([]byte(passphrase), salt, kdfIterations, derivedKeySize, sha256.New),
	}, nil
}

// Get decrypts the stored value.
func (e *EncryptedBackend) Get(key string) (string, error) {
	ciphertext, err := e.inner.Get(key)
	if err != nil {
		return "", err
	}
	plaintext, err := e.decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return plaintext, nil
}

// Set encrypts value and stores it.
func (e *EncryptedBackend) Set(key, value string) error {
	ciphertext, err := e.encrypt(value)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}
	return e.inner.Set(key, ciphertext)
}

// Delete removes key from the wrapped backend.
func (e *EncryptedBackend) Delete(key string) error {
	return e.inner.Delete(key)
}

func loadOrCreateSalt(inner Backend) ([]byte, error) {
	encoded, err := inner.Get(saltKey)
	if err == nil {
		salt, decErr := base64.StdEncoding.DecodeString(encoded)
		if decErr == nil && len(salt) == saltSize {
			return salt, nil
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	if err := inner.Set(saltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("store salt: %w", err)
	}
	return salt, nil
}

func (e *EncryptedBackend) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (e *EncryptedBackend) decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, body := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, body, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
