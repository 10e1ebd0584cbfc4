package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of an access token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email,omitempty"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the account service.
type TokenService interface {
	// GenerateAccessToken signs a token for the user. Used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID, email string, roles []string) (string, error)

	// ValidateAccessToken parses and verifies a token string.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
