// Package auth issues and verifies the signed session claims handed to
// clients after a successful login. Claims are never stored server-side:
// validity is purely a function of the signature and the embedded expiry.
package auth

import (
	"errors"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session claim set: the registered claims plus the identity
// fields the portal needs to gate protected views. The password hash is
// never part of it.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// GenerateToken signs an HS256 token for the given identity, valid from now
// until now+validityDuration.
func GenerateToken(userID, email, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", shared.ErrorInternal
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns the
// embedded claims. Expired tokens yield shared.ErrorTokenExpired; any other
// verification failure yields shared.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, shared.ErrorTokenExpired
		}
		return nil, shared.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, shared.ErrorInvalidToken
	}

	return claims, nil
}
