package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plateful/config"
)

func newTestHasher() *bcryptHasher {
	// Low cost keeps the test fast; correctness does not depend on it.
	return NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	}).(*bcryptHasher)
}

func TestBcryptHasher_HashProducesFreshSaltPerCall(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	second, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("correct horse battery staple", first))
	assert.True(t, hasher.Check("correct horse battery staple", second))
}

func TestBcryptHasher_CheckRejectsWrongPassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("password-one")
	require.NoError(t, err)

	assert.False(t, hasher.Check("password-two", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckRejectsMalformedDigest(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("whatever", ""))
}

func TestBcryptHasher_DefaultsCostWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	hash, err := hasher.Hash("secret-pass")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secret-pass", hash))
}
