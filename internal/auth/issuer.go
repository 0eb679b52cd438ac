package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinicore/staff-registry/pkg/config"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Issuer mints and verifies HS256 tokens carrying the subject's identity.
// The signing key is process-wide configuration loaded once at startup.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewIssuer creates a token issuer from JWT configuration
func NewIssuer(cfg *config.JWTConfig) *Issuer {
	return &Issuer{
		secret: []byte(cfg.SecretKey),
		ttl:    time.Duration(cfg.TokenTTL) * time.Second,
		issuer: cfg.Issuer,
	}
}

// Issue mints a signed, time-bounded token for the subject
func (i *Issuer) Issue(subjectID string) (*types.SignedToken, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString(i.secret)
	if err != nil {
		return nil, types.NewInternalError(types.ErrCodeInternalError, "failed to sign token", err)
	}

	return &types.SignedToken{
		Value:     value,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks signature and expiry and returns the subject id
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return "", fmt.Errorf("token expired")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token carries no subject")
	}

	return claims.Subject, nil
}
