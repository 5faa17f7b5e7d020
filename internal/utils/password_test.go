package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	a, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword(a, "secret"))
	assert.True(t, VerifyPassword(b, "secret"))
}

func TestHashPassword_CostEmbedded(t *testing.T) {
	hash, err := HashPassword("secret", 5)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret"))
}

func TestHashPassword_TooLong(t *testing.T) {
	long := make([]byte, MaxPasswordBytes+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := HashPassword(string(long), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBurnVerify_DoesNotPanic(t *testing.T) {
	BurnVerify("anything", bcrypt.MinCost)
	BurnVerify("again", bcrypt.MinCost)
}
