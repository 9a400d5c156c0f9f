package auth

//go:generate mockgen -destination=mocks/mock_validator.go -package=mocks -source=validator.go TokenValidator

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator abstracts token validation for testability
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

// hs256Validator checks tokens signed with a shared secret
type hs256Validator struct {
	secret []byte
	parser *jwt.Parser
}

// NewHS256Validator returns a validator for HS256 tokens signed with secret
func NewHS256Validator(secret string) (TokenValidator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &hs256Validator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

func (v *hs256Validator) ValidateToken(_ context.Context, token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// IsAdmin reports whether claims carry is_admin=true
func IsAdmin(claims jwt.MapClaims) bool {
	admin, ok := claims[AdminClaim].(bool)
	return ok && admin
}
