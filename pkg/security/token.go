package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/pkg/apperr"
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID   string
	IsSeller bool
}

type tokenClaims struct {
	IsSeller bool `json:"isSeller"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Tokens are stateless:
// nothing is stored server side and there is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a token service signing with secret. A zero ttl
// issues tokens without an expiry.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for claims.
func (s *TokenService) Issue(claims Claims) (string, error) {
	now := s.now()
	registered := jwt.RegisteredClaims{
		Subject:  claims.UserID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		IsSeller:         claims.IsSeller,
		RegisteredClaims: registered,
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and structure of tokenString. It fails with
// apperr.ErrTokenExpired for an expired token and apperr.ErrInvalidToken for
// anything else.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrInvalidToken
	}

	if parsed.Subject == "" {
		return nil, apperr.ErrInvalidToken
	}

	return &Claims{
		UserID:   parsed.Subject,
		IsSeller: parsed.IsSeller,
	}, nil
}
