// package session owns the lifecycle of the signed credential bundle: creation,
// verification, expiry detection, and silent refresh.
//
// No other package constructs, signs, or mutates the bundle. Callers only
// ever see the decoded bundle or an absence signal.
package session

import (
	"fmt"
	"time"

	"github.com/desertthunder/aurabeat/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// NowFunc returns the current time. It can be overridden in tests.
var NowFunc = time.Now

// Identity is the immutable user snapshot captured at login time. It is the
// only part of the bundle the presentation layer ever sees.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Bundle represents one authenticated user session.
//
// AccessToken and ExpiresAt always correspond: both are replaced together on
// refresh. ExpiresAt is seconds since epoch.
type Bundle struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresAt    int64    `json:"expires_at"`
	User         Identity `json:"user"`
}

// Stale reports whether the access token has passed its expiry instant.
func (b *Bundle) Stale() bool {
	return NowFunc().Unix() >= b.ExpiresAt
}

type sessionClaims struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresAt    int64    `json:"expires_at"`
	User         Identity `json:"user"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bundles as HS256 JWTs bound to a fixed validity
// window.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a codec with the given signing secret and token lifetime.
//
// An empty secret is rejected outright: there is no fallback signing key.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, shared.ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Sign serializes the bundle into a signed, tamper-evident token.
func (c *Codec) Sign(bundle Bundle) (string, error) {
	now := NowFunc()
	claims := sessionClaims{
		AccessToken:  bundle.AccessToken,
		RefreshToken: bundle.RefreshToken,
		ExpiresAt:    bundle.ExpiresAt,
		User:         bundle.User,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and validity window and decodes the
// bundle. Malformed, tampered, and expired tokens all fail verification; the
// caller treats every failure the same way.
func (c *Codec) Verify(raw string) (*Bundle, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return NowFunc() }))
	if err != nil {
		return nil, fmt.Errorf("session verification failed: %w", err)
	}

	return &Bundle{
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		ExpiresAt:    claims.ExpiresAt,
		User:         claims.User,
	}, nil
}

// TTL returns the codec's validity window.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
