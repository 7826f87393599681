package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"fudys.backend/pkg/crypto"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := crypto.HashPasswordCost("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, crypto.CheckPassword("s3cret", hash))
	assert.False(t, crypto.CheckPassword("wrong", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	a, err := crypto.HashPasswordCost("same", 4)
	require.NoError(t, err)
	b, err := crypto.HashPasswordCost("same", 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateResetToken(t *testing.T) {
	a, err := crypto.GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := crypto.GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
