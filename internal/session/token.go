// Package session issues and verifies the signed token carried in the auth cookie.
package session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie holding the session token
	CookieName = "auth"
	// Prefix marks an authenticated cookie value; the signed token follows it
	Prefix = "authenticated:"
)

var (
	ErrNoToken      = errors.New("session token is missing")
	ErrInvalidToken = errors.New("session token is invalid")
	ErrExpiredToken = errors.New("session token has expired")
)

// Claims carried by the token
type Claims struct {
	jwt.RegisteredClaims
}

// Principal returns the principal identifier (username)
func (c *Claims) Principal() string {
	return c.Subject
}

// Issuer signs and verifies HS256 tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer panics on an empty secret: a missing secret is a startup error, never a runtime fallback.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if secret == "" {
		panic("session: secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue creates a token for the principal
func (i *Issuer) Issue(principal string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm and expiry
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// FromCookieValue strips the authenticated prefix. A value without the prefix carries no token.
func FromCookieValue(value string) string {
	if !strings.HasPrefix(value, Prefix) {
		return ""
	}
	return strings.TrimPrefix(value, Prefix)
}

// TokenFromRequest reads the token from the auth cookie, falling back to a Bearer header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if tok := FromCookieValue(c.Value); tok != "" {
			return tok
		}
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CookieOptions controls cookie attributes per environment
type CookieOptions struct {
	Secure bool
}

// SetCookie writes the authenticated cookie. The value is written unescaped so the
// prefix survives the round trip through the browser.
func SetCookie(c *gin.Context, token string, ttl time.Duration, opts CookieOptions) {
	http.SetCookie(c.Writer, opts.cookie(Prefix+token, int(ttl.Seconds())))
}

// ClearCookie empties the cookie and expires it immediately (Max-Age=0)
func ClearCookie(c *gin.Context, opts CookieOptions) {
	http.SetCookie(c.Writer, opts.cookie("", -1))
}

func (o CookieOptions) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if o.Secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}
