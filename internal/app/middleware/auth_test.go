package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revenue/internal/app/config"
	"revenue/internal/app/ds"
	"revenue/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type memBlacklist map[string]bool

func (m memBlacklist) IsBlacklisted(_ context.Context, jwtStr string) (bool, error) {
	return m[jwtStr], nil
}

func signToken(t *testing.T, secret string, userRole role.Role, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(expiresIn).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
		SessionUUID: uuid.New(),
		UserID:      7,
		Login:       "anna",
		Role:        userRole,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newRouter(blacklist Blacklist, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Token: testSecret}}
	am := NewAuthMiddleware(blacklist, cfg)

	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(roles...), func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, user.Login+":"+user.Role.String())
	})
	return r
}

func TestWithAuthCheck(t *testing.T) {
	employee := signToken(t, testSecret, role.Employee, time.Minute)
	admin := signToken(t, testSecret, role.Admin, time.Minute)
	revoked := signToken(t, testSecret, role.Admin, 2*time.Minute)

	tests := []struct {
		name   string
		roles  []role.Role
		cookie string
		header string
		status int
		body   string
	}{
		{name: "no token", status: http.StatusUnauthorized},
		{name: "cookie", cookie: employee, status: http.StatusOK, body: "anna:Employee"},
		{name: "bearer header", header: "Bearer " + admin, status: http.StatusOK, body: "anna:Admin"},
		{name: "wrong role", roles: []role.Role{role.Admin}, cookie: employee, status: http.StatusForbidden},
		{name: "matching role", roles: []role.Role{role.Admin}, cookie: admin, status: http.StatusOK, body: "anna:Admin"},
		{name: "foreign secret", cookie: signToken(t, "other", role.Admin, time.Minute), status: http.StatusUnauthorized},
		{name: "expired", cookie: signToken(t, testSecret, role.Admin, -time.Minute), status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", status: http.StatusUnauthorized},
		{name: "blacklisted", cookie: revoked, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(memBlacklist{revoked: true}, tt.roles...)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestWithAuthCheck_NoBlacklistConfigured(t *testing.T) {
	router := newRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookie, Value: signToken(t, testSecret, role.Employee, time.Minute)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
