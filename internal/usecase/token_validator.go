package usecase

import (
	"renthub/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow auth dependency the HTTP middleware needs:
// token in, user identity out.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type jwtTokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{svc: svc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.svc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, jwt.ErrInvalidToken
	}
	return claims.UserID, nil
}
