// ABOUTME: Session token issuing and verification for persisted sessions
// ABOUTME: HS256 signed JWTs carrying the user id in the sub claim

package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session expired")
)

// SessionDuration is how long a persisted session stays valid.
const SessionDuration = 30 * 24 * time.Hour

// SessionTokens issues and verifies the signed tokens the current session is
// persisted as. Signing keeps the on-disk session tamper-evident.
type SessionTokens struct {
	secret []byte
}

// NewSessionTokens creates a token issuer/verifier with the given secret.
func NewSessionTokens(secret []byte) *SessionTokens {
	return &SessionTokens{secret: secret}
}

// Issue creates a signed session token for the given user id.
func (t *SessionTokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(SessionDuration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify validates the token and extracts the user id from the sub claim.
func (t *SessionTokens) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
