package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", stored)
	assert.NotContains(t, stored, "secret123")

	salt, hash, ok := strings.Cut(stored, ":")
	require.True(t, ok)
	assert.Len(t, salt, 32)
	assert.Len(t, hash, 64)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret123", stored))
	assert.False(t, VerifyPassword("secret124", stored))
	assert.False(t, VerifyPassword("", stored))
}

func TestVerifyPasswordMalformedStored(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", ""))
	assert.False(t, VerifyPassword("secret123", "nodelimiter"))
	assert.False(t, VerifyPassword("secret123", "salt:"))
}
