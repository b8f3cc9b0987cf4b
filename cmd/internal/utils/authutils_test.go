package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWT())

	access, refresh, err := GenerateTokenPair(42, "dueno@comercial.pe")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	data, err := ValidateToken(access)
	require.NoError(t, err)
	assert.EqualValues(t, 42, data.UserID)
	assert.Equal(t, "dueno@comercial.pe", data.Email)
	assert.Greater(t, data.Exp, int64(0))

	// The Bearer prefix is tolerated.
	data, err = ValidateToken("Bearer " + access)
	require.NoError(t, err)
	assert.EqualValues(t, 42, data.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWT())

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestIsRUCValid(t *testing.T) {
	assert.True(t, IsRUCValid("20100070970"))
	assert.True(t, IsRUCValid("20131312955"))

	assert.False(t, IsRUCValid("20100070971")) // bad check digit
	assert.False(t, IsRUCValid("2010007097"))  // too short
	assert.False(t, IsRUCValid("20100070970x"))
	assert.False(t, IsRUCValid("2010007097a"))
	assert.False(t, IsRUCValid(""))
}
