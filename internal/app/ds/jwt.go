package ds

import (
	"revenue/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type JWTClaims struct {
	jwt.StandardClaims
	SessionUUID uuid.UUID `json:"session_uuid"`
	UserID      uint      `json:"user_id"`
	Login       string    `json:"login"`
	Role        role.Role `json:"role"`
}
