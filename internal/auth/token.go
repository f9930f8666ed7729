package auth

import (
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims carries the standard claims plus the authenticated account id.
type sessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// generateSessionToken signs an HS256 token identifying accountID, valid for
// the given duration.
func generateSessionToken(accountID string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		AccountID: accountID,
	})

	return token.SignedString(secret)
}

// accountIDFromToken validates tokenString against secret and returns the
// embedded account id. Malformed, forged or expired tokens yield
// common.ErrInvalidToken.
func accountIDFromToken(tokenString string, secret []byte) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
