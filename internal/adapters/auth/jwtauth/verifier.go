// Package jwtauth implementa auth.AuthVerifier con tokens HS256 emitidos por el
// servicio de identidad de la tienda (secreto compartido).
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-scheduler/internal/ports/auth"

	jwt "github.com/golang-jwt/jwt/v5"
)

const defaultLeeway = 30 * time.Second

var (
	ErrNotConfigured  = errors.New("jwt verifier requires a secret")
	ErrTokenEmpty     = errors.New("token is empty")
	ErrSubjectMissing = errors.New("token subject missing")
)

type Config struct {
	Secret string
	// Opcional: si viene, se exige el claim iss.
	Issuer string
	Leeway time.Duration
}

type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

func NewVerifier(cfg Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrNotConfigured
	}
	leeway := cfg.Leeway
	if leeway <= 0 {
		leeway = defaultLeeway
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(cfg.Issuer),
		leeway: leeway,
	}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}
	if !parsed.Valid {
		return auth.Claims{}, errors.New("jwt verify failed: invalid token")
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return auth.Claims{}, ErrSubjectMissing
	}

	out := auth.Claims{
		UserID: sub,
		Email:  strings.TrimSpace(claims.Email),
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
