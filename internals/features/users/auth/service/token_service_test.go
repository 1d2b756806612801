package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fizika_backend/internals/configs"
)

func init() {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
}

func TestSignAccessTokenCarriesClaims(t *testing.T) {
	userID := uuid.New()
	signed, err := SignAccessToken(userID, "Hazil Rafik", "teacher")
	require.NoError(t, err)

	tok, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, "Hazil Rafik", claims["full_name"])
	assert.NotNil(t, claims["exp"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	signed, err := SignRefreshToken(userID)
	require.NoError(t, err)

	got, err := ParseRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	signed, err := SignAccessToken(uuid.New(), "x", "student")
	require.NoError(t, err)

	_, err = ParseRefreshToken(signed)
	assert.Error(t, err)
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := ComputeRefreshHash("tok")
	b := ComputeRefreshHash("tok")
	c := ComputeRefreshHash("other")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, CheckPassword(hash, "s3cret-passw0rd"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
