package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/ports"
)

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.ComponentStore
	config EncryptionConfig
}

// NewEncryption creates a middleware that encrypts pre-filled field
// values with AES-GCM before they reach the backend. The component
// structure stays readable so backends can still index by custom ID;
// only the user-supplied values are opaque at rest.
func NewEncryption(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.ComponentStore) ports.ComponentStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, customID string, record ports.PendingModal, ttl time.Duration) error {
	sealed, err := mapFields(record, func(fieldID, value string) (string, error) {
		ciphertext, err := encrypt([]byte(value), m.config.ActiveKey)
		if err != nil {
			return "", fmt.Errorf("failed to encrypt field value: %w", err)
		}
		return base64.StdEncoding.EncodeToString(ciphertext), nil
	})
	if err != nil {
		return err
	}
	return m.next.Save(ctx, customID, sealed, ttl)
}

func (m *encryptionMiddleware) Load(ctx context.Context, customID string) (ports.PendingModal, error) {
	record, err := m.next.Load(ctx, customID)
	if err != nil {
		return ports.PendingModal{}, err
	}
	return mapFields(record, func(fieldID, value string) (string, error) {
		ciphertext, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return "", fmt.Errorf("failed to decode ciphertext base64: %w", err)
		}
		plain, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt field value: %w", err)
		}
		return string(plain), nil
	})
}

func (m *encryptionMiddleware) Delete(ctx context.Context, customID string) error {
	return m.next.Delete(ctx, customID)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// mapFields returns a copy of the record with fn applied to every
// non-empty text-input value. The input record is left untouched.
func mapFields(record ports.PendingModal, fn func(fieldID, value string) (string, error)) (ports.PendingModal, error) {
	rows := make([]component.ActionRow, len(record.Data.Components))
	for i, row := range record.Data.Components {
		children := make([]component.Component, len(row.Components))
		for j, child := range row.Components {
			ti, ok := child.(component.TextInput)
			if !ok || ti.Value == "" {
				children[j] = child
				continue
			}
			mapped, err := fn(ti.CustomID, ti.Value)
			if err != nil {
				return ports.PendingModal{}, err
			}
			ti.Value = mapped
			children[j] = ti
		}
		rows[i] = component.ActionRow{Type: row.Type, Components: children}
	}
	record.Data.Components = rows
	return record, nil
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
