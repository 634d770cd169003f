package crypto

import (
	"encoding/json"
	"fmt"
)

// EncryptJSON serializes v to JSON and encrypts the result. A nil value maps
// to an empty Field.
func (c *Cipher) EncryptJSON(v any) (Field, error) {
	if v == nil {
		return Field{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Field{}, fmt.Errorf("%w: %v", ErrInput, err)
	}

	return c.Encrypt(string(data))
}

// DecryptJSON decrypts f and unmarshals the plaintext into dst. An empty
// Field leaves dst untouched. A payload that decrypts but does not parse is
// ErrCodec, so callers can tell a wrong key from a corrupted value.
func (c *Cipher) DecryptJSON(f Field, dst any) error {
	plaintext, err := c.Decrypt(f)
	if err != nil {
		return err
	}
	if plaintext == nil {
		return nil
	}

	if err := json.Unmarshal([]byte(*plaintext), dst); err != nil {
		c.log.Error("decrypted payload failed to parse", "error", err)
		return fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return nil
}
