// Package auth resolves the caller of a request and decides what the caller may do.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoCaller     = errors.New("you must be signed in to use this endpoint")
	ErrInvalidToken = errors.New("the session token is invalid or expired")
)

// sessionCookie is the cookie the web application stores the session token in.
const sessionCookie = "__session"

// Caller is the identity of the person making a request.
type Caller struct {
	ExternalID string
	Email      string
	Name       string
}

// Identity resolves the caller of a request.
type Identity interface {
	// Caller returns ErrNoCaller if the request is anonymous.
	Caller(r *http.Request) (Caller, error)
}

type claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTIdentity reads HMAC signed session tokens issued by the identity provider.
type JWTIdentity struct {
	secret []byte
	issuer string
}

func NewJWTIdentity(secret, issuer string) JWTIdentity {
	return JWTIdentity{secret: []byte(secret), issuer: issuer}
}

func (j JWTIdentity) Caller(r *http.Request) (Caller, error) {
	token := bearer(r)
	if token == "" {
		return Caller{}, ErrNoCaller
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if j.issuer != "" {
		options = append(options, jwt.WithIssuer(j.issuer))
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, options...)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if c.Subject == "" {
		return Caller{}, ErrInvalidToken
	}

	return Caller{ExternalID: c.Subject, Email: c.Email, Name: c.Name}, nil
}

// Sign issues a session token for the caller.
func (j JWTIdentity) Sign(c Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: c.Email,
		Name:  c.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.ExternalID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString(j.secret)
}

func bearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}
