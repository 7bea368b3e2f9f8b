package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"revenue/internal/app/config"
	"revenue/internal/app/ds"
	"revenue/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

// AuthCookie - имя HttpOnly cookie с JWT
const AuthCookie = "auth_token"

// Blacklist - отозванные при выходе токены (Redis)
type Blacklist interface {
	IsBlacklisted(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

// NewAuthMiddleware; blacklist может быть nil, если Redis не настроен
func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// WithAuthCheck middleware для проверки авторизации с ролями.
// Без ролей пропускает любого авторизованного пользователя.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := TokenFromRequest(gCtx)
		if jwtStr == "" {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Проверяем токен в blacklist Redis
		if am.Blacklist != nil {
			blacklisted, err := am.Blacklist.IsBlacklisted(gCtx.Request.Context(), jwtStr)
			if err != nil {
				logrus.WithError(err).Warn("jwt blacklist check failed")
			}
			if blacklisted {
				gCtx.AbortWithStatus(http.StatusUnauthorized)
				return
			}
		}

		claims, err := am.ParseToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Проверяем роли пользователя
		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.AbortWithStatus(http.StatusForbidden)
			return
		}

		setCurrentUser(gCtx, claims)
		gCtx.Next()
	})
}

// TokenFromRequest достаёт JWT из cookie, а при её отсутствии из заголовка Authorization
func TokenFromRequest(gCtx *gin.Context) string {
	if cookie, err := gCtx.Cookie(AuthCookie); err == nil && cookie != "" {
		return cookie
	}
	return strings.TrimPrefix(gCtx.GetHeader("Authorization"), "Bearer ")
}

// ParseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// hasRequiredRole проверяет, есть ли у пользователя необходимая роль
func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
