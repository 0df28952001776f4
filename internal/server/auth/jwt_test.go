package auth

import (
	"testing"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateToken("u1", "escuela@escuela.com", "ADMIN", testSecret, 7*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseToken(tokenString, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "escuela@escuela.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestGenerateToken_ExpirySevenDaysOut(t *testing.T) {
	validity := 7 * 24 * time.Hour
	before := time.Now()

	tokenString, err := GenerateToken("u1", "a@b.com", "USER", testSecret, validity)
	require.NoError(t, err)

	claims, err := ParseToken(tokenString, testSecret)
	require.NoError(t, err)

	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, validity, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, before.Add(validity), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken("u1", "a@b.com", "USER", nil, time.Hour)
	assert.ErrorIs(t, err, shared.ErrorInternal)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("u1", "a@b.com", "USER", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, []byte("other-secret"))
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	tokenString, err := GenerateToken("u1", "a@b.com", "USER", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.ErrorIs(t, err, shared.ErrorTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)
}

func TestClaims_NoPasswordLeakage(t *testing.T) {
	tokenString, err := GenerateToken("u1", "a@b.com", "USER", testSecret, time.Hour)
	require.NoError(t, err)

	// decode the payload without verification and inspect the raw claim keys
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	require.NoError(t, err)

	raw, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	for key := range raw {
		assert.Contains(t, []string{"id", "email", "role", "iat", "exp"}, key)
	}
}
