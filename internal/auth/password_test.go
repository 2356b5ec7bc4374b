package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.NoError(t, ComparePassword(hash, "hunter22"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
