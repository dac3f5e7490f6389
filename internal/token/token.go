package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity bundle carried by both token classes.
// The same shape is signed into the short-lived access token and the
// longer-lived refresh token; only secret and TTL differ.
type Claims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies access and refresh tokens (HS256).
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewIssuer builds an Issuer from the two signing secrets and lifetimes.
func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// AccessTTL reports the configured access token lifetime.
func (i *Issuer) AccessTTL() time.Duration { return i.accessTTL }

// RefreshTTL reports the configured refresh token lifetime.
func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

func (i *Issuer) sign(c Claims, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

// NewAccessToken signs a short-lived access token for the given identity.
func (i *Issuer) NewAccessToken(c Claims, now time.Time) (string, error) {
	return i.sign(c, i.accessSecret, i.accessTTL, now)
}

// NewRefreshToken signs a refresh token for the given identity.
func (i *Issuer) NewRefreshToken(c Claims, now time.Time) (string, error) {
	return i.sign(c, i.refreshSecret, i.refreshTTL, now)
}

func parse(tokenString string, secret []byte) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}

// ParseAccess verifies an access token's signature and expiry.
// Expiry surfaces as jwt.ErrTokenExpired through the error chain.
func (i *Issuer) ParseAccess(tokenString string) (*Claims, error) {
	return parse(tokenString, i.accessSecret)
}

// ParseRefresh verifies a refresh token's signature and expiry.
func (i *Issuer) ParseRefresh(tokenString string) (*Claims, error) {
	return parse(tokenString, i.refreshSecret)
}
