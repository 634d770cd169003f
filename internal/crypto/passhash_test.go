package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSecret(t *testing.T) {
	digest, err := HashSecret("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotContains(t, digest, "correct horse")

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, hashCost, cost)
}

func TestHashSecret_SaltedPerCall(t *testing.T) {
	first, err := HashSecret("same secret")
	require.NoError(t, err)
	second, err := HashSecret("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifySecret("same secret", first))
	assert.True(t, VerifySecret("same secret", second))
}

func TestVerifySecret(t *testing.T) {
	digest, err := HashSecret("emergency-2024")
	require.NoError(t, err)

	assert.True(t, VerifySecret("emergency-2024", digest))
	assert.False(t, VerifySecret("emergency-2025", digest))
	assert.False(t, VerifySecret("", digest))
}

func TestVerifySecret_MalformedDigest(t *testing.T) {
	assert.False(t, VerifySecret("anything", "not a bcrypt digest"))
	assert.False(t, VerifySecret("anything", ""))
}
