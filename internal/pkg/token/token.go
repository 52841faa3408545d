// Package token issues and verifies the signed session tokens that prove an
// authenticated staff identity. Tokens are stateless HS256 JWTs carrying the
// user id and username with a configured expiry horizon.
package token

import (
	"strconv"
	"time"

	"cakery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded per-request identity embedded in a session token.
// It is derived from the token on every request and never stored server-side.
type Identity struct {
	UserID   int64
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. The secret must not be empty and the
// ttl must be positive.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("token secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given identity expiring after the configured
// horizon.
func (s *Service) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string and returns the embedded
// identity. Every failure mode (malformed, bad signature, expired) collapses
// into the same unauthorized error so callers cannot learn which check
// failed.
func (s *Service) Verify(tokenString string) (Identity, error) {
	unauthorized := errs.NewUnauthorizedError("token is not valid")

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewValueIsInvalidError("signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, unauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, unauthorized
	}

	return Identity{UserID: userID, Username: claims.Username}, nil
}
