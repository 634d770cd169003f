package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches 12 log-rounds, slow enough to resist offline brute force.
const hashCost = 12

// HashSecret produces a salted one-way digest of a secret. Used for both the
// login password and the public-access password; the two never share digests
// because bcrypt salts every call.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(digest), nil
}

// VerifySecret checks a secret against a stored digest in constant time.
// A malformed digest is a mismatch, never an error.
func VerifySecret(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
