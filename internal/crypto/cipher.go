package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

var (
	ErrKeyConfig = errors.New("invalid encryption key configuration")
	ErrInput     = errors.New("value cannot be encrypted")
	ErrDecrypt   = errors.New("decryption failed")
	ErrCodec     = errors.New("decrypted payload is not valid JSON")
)

// IVSize is the fixed initialization vector length in bytes.
const IVSize = 16

// Field is one encrypted value at rest: hex-encoded ciphertext plus the IV it
// was encrypted with. Both pointers are nil when nothing was ever stored;
// a pair with only one side present is corrupt.
type Field struct {
	Ciphertext *string
	IV         *string
}

// Empty reports whether the field holds no data at all.
func (f Field) Empty() bool {
	return f.Ciphertext == nil && f.IV == nil
}

// Cipher encrypts and decrypts field values under the process master key.
// The key is loaded once at startup and never changes for the process lifetime.
type Cipher struct {
	aead cipher.AEAD
	log  *slog.Logger
}

// NewCipher builds a Cipher from the master key material. The key must be
// either a 64-character hex string or a 32-character raw string; any other
// length is a startup configuration error.
func NewCipher(key string, log *slog.Logger) (*Cipher, error) {
	raw, err := parseKey(key)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyConfig, err)
	}

	// 16-byte nonces keep the stored IV at the legacy 128-bit length while
	// gaining GCM's integrity check over plain CBC.
	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyConfig, err)
	}

	return &Cipher{
		aead: aead,
		log:  log.With("component", "cipher"),
	}, nil
}

func parseKey(key string) ([]byte, error) {
	switch len(key) {
	case 64:
		raw, err := hex.DecodeString(key)
		if err != nil {
			return nil, fmt.Errorf("%w: key is 64 characters but not valid hex", ErrKeyConfig)
		}
		return raw, nil
	case 32:
		return []byte(key), nil
	default:
		return nil, fmt.Errorf("%w: key must be 32 characters raw or 64 characters hex, got %d", ErrKeyConfig, len(key))
	}
}

// Encrypt encrypts plaintext under a fresh random IV. An empty plaintext is a
// legitimate "nothing to store" state and yields an empty Field, not an error.
func (c *Cipher) Encrypt(plaintext string) (Field, error) {
	if plaintext == "" {
		return Field{}, nil
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return Field{}, fmt.Errorf("generate iv: %w", err)
	}

	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)

	ct := hex.EncodeToString(sealed)
	ivHex := hex.EncodeToString(iv)
	return Field{Ciphertext: &ct, IV: &ivHex}, nil
}

// Decrypt reverses Encrypt. An empty Field decrypts to nil without error so
// callers can tell "never stored" apart from "stored but won't decrypt";
// every other failure is ErrDecrypt.
func (c *Cipher) Decrypt(f Field) (*string, error) {
	if f.Empty() {
		return nil, nil
	}
	if f.Ciphertext == nil || f.IV == nil {
		return nil, fmt.Errorf("%w: ciphertext and iv must be present together", ErrDecrypt)
	}

	iv, err := hex.DecodeString(*f.IV)
	if err != nil || len(iv) != IVSize {
		return nil, fmt.Errorf("%w: malformed iv", ErrDecrypt)
	}

	sealed, err := hex.DecodeString(*f.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed ciphertext", ErrDecrypt)
	}

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		c.log.Error("field decryption failed", "error", err)
		return nil, fmt.Errorf("%w: authentication failed", ErrDecrypt)
	}

	out := string(plaintext)
	return &out, nil
}
