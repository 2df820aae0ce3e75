package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are issued by the identity provider. Only the user id is trusted here.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
