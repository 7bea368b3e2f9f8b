package middleware

import (
	"time"

	"revenue/internal/app/ds"
	"revenue/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const currentUserKey = "current_user"

// CurrentUser - пользователь из проверенного JWT
type CurrentUser struct {
	ID          uint
	Login       string
	Role        role.Role
	SessionUUID uuid.UUID
	ExpiresAt   time.Time
}

func (u *CurrentUser) IsAdmin() bool {
	return u.Role == role.Admin
}

func setCurrentUser(c *gin.Context, claims *ds.JWTClaims) {
	c.Set(currentUserKey, &CurrentUser{
		ID:          claims.UserID,
		Login:       claims.Login,
		Role:        claims.Role,
		SessionUUID: claims.SessionUUID,
		ExpiresAt:   time.Unix(claims.ExpiresAt, 0),
	})
}

// GetUserFromContext извлекает пользователя, положенного WithAuthCheck
func GetUserFromContext(c *gin.Context) (*CurrentUser, bool) {
	if user, exists := c.Get(currentUserKey); exists {
		if u, ok := user.(*CurrentUser); ok {
			return u, true
		}
	}
	return nil, false
}
