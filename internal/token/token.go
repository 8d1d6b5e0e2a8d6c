// Package token issues and verifies the signed identity tokens carried in the
// jwt cookie. Tokens are HS256 with a 7-day expiry and are not persisted:
// validity is purely cryptographic.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is how long an issued token stays valid.
const TTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed, or expired. Callers must not distinguish.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Service signs and verifies identity tokens with a shared secret.
type Service struct {
	secret []byte
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token binding subjectID with a TTL expiry.
func (s *Service) Issue(subjectID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		UserID: subjectID,
	})
	return t.SignedString(s.secret)
}

// Verify parses tokenString and returns the subject user id.
func (s *Service) Verify(tokenString string) (string, error) {
	c := &claims{}
	t, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid || c.UserID == "" {
		return "", ErrInvalidToken
	}
	return c.UserID, nil
}
