// Package token implements the signed bearer token codec. Tokens are HS256
// JWTs carrying the subject id and role plus an expiry instant. Issue and
// Verify are pure over the signing key and the injected clock.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketline/commerce-system/internal/core/domain"
)

var (
	ErrExpired   = errors.New("token expired")
	ErrSignature = errors.New("token signature invalid")
	ErrMalformed = errors.New("token malformed")
)

// claims is the wire shape of an issued token.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies identity tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// Option modifies a Codec at construction time.
type Option func(*Codec)

// WithNow sets the clock, primarily for testing.
func WithNow(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret string, opts ...Option) *Codec {
	c := &Codec{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue signs a token embedding identity with expiry now+ttl.
func (c *Codec) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}
	cl := claims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(c.now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(c.now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded identity
// exactly as issued. Expiry is checked first on the unverified claims so an
// expired token always reports ErrExpired, even when it was also tampered.
func (c *Codec) Verify(tok string) (domain.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)

	var unverified claims
	if _, _, err := parser.ParseUnverified(tok, &unverified); err != nil {
		return domain.Identity{}, ErrMalformed
	}
	if unverified.ExpiresAt == nil || !c.now().Before(unverified.ExpiresAt.Time) {
		return domain.Identity{}, ErrExpired
	}

	var cl claims
	parsed, err := parser.ParseWithClaims(tok, &cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, ErrSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, ErrExpired
		default:
			return domain.Identity{}, ErrMalformed
		}
	}

	role, ok := domain.ParseRole(cl.Role)
	if !ok || cl.Subject == "" {
		return domain.Identity{}, ErrMalformed
	}
	return domain.Identity{ID: cl.Subject, Role: role}, nil
}
