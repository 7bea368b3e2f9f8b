package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"revenue/internal/app/config"
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"
	"revenue/internal/app/middleware"
	"revenue/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "revenue-api"

type UserStore interface {
	GetUserByID(ctx context.Context, id uint) (*ds.User, error)
	GetUserByLogin(ctx context.Context, login string) (*ds.User, error)
	UserExistsByLogin(ctx context.Context, login string) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
	CreateUser(ctx context.Context, login, passwordHash string, userRole role.Role) (*ds.User, error)
}

// TokenBlacklist - куда попадают токены после выхода
type TokenBlacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthHandler struct {
	Users      UserStore
	Blacklist  TokenBlacklist
	Middleware *middleware.AuthMiddleware
	Config     *config.Config
}

// NewAuthHandler; blacklist может быть nil, тогда выход только очищает cookie
func NewAuthHandler(users UserStore, blacklist TokenBlacklist, authMiddleware *middleware.AuthMiddleware, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Users:      users,
		Blacklist:  blacklist,
		Middleware: authMiddleware,
		Config:     cfg,
	}
}

// HashPassword - bcrypt с cost по умолчанию
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RegisterUser регистрация нового сотрудника
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с ролью Employee
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/account/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		bindError(ctx, err)
		return
	}

	user, status, err := h.createUser(ctx.Request.Context(), request, role.Employee)
	if err != nil {
		errorResponse(ctx, status, err.Error())
		return
	}

	logrus.WithField("login", user.Login).Info("user registered")
	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// CreateAdmin создаёт первого администратора
// @Summary Создание администратора
// @Description Доступно, только пока в системе нет ни одного администратора
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные администратора"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/setup/create-admin [post]
func (h *AuthHandler) CreateAdmin(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		bindError(ctx, err)
		return
	}

	exists, err := h.Users.AdminExists(ctx.Request.Context())
	if err != nil {
		logrus.Error("Error checking admin: ", err)
		errorResponse(ctx, http.StatusInternalServerError, "internal server error")
		return
	}
	if exists {
		errorResponse(ctx, http.StatusBadRequest, "admin already exists")
		return
	}

	user, status, err := h.createUser(ctx.Request.Context(), request, role.Admin)
	if err != nil {
		errorResponse(ctx, status, err.Error())
		return
	}

	logrus.WithField("login", user.Login).Info("admin created")
	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) createUser(ctx context.Context, request dto.RegisterRequest, userRole role.Role) (*ds.User, int, error) {
	exists, err := h.Users.UserExistsByLogin(ctx, request.Login)
	if err != nil {
		logrus.Error("Error checking login: ", err)
		return nil, http.StatusInternalServerError, errors.New("internal server error")
	}
	if exists {
		return nil, http.StatusConflict, errors.New("user with this login already exists")
	}

	hash, err := HashPassword(request.Password)
	if err != nil {
		logrus.Error("Error hashing password: ", err)
		return nil, http.StatusInternalServerError, errors.New("internal server error")
	}

	user, err := h.Users.CreateUser(ctx, request.Login, hash, userRole)
	if err != nil {
		logrus.Error("Error creating user: ", err)
		return nil, http.StatusInternalServerError, errors.New("internal server error")
	}
	return user, http.StatusCreated, nil
}

// LoginUser вход в систему
// @Summary Вход в систему
// @Description Проверяет пароль и кладёт JWT в HttpOnly cookie auth_token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/account/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		bindError(ctx, err)
		return
	}

	user, err := h.Users.GetUserByLogin(ctx.Request.Context(), request.Login)
	if err != nil {
		logrus.Error("Error getting user: ", err)
		errorResponse(ctx, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		errorResponse(ctx, http.StatusUnauthorized, "invalid login or password")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		SessionUUID: uuid.New(),
		UserID:      user.ID,
		Login:       user.Login,
		Role:        user.Role,
	})

	accessToken, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		logrus.Error("Error signing token: ", err)
		errorResponse(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.AuthCookie, accessToken, int(h.Config.JWT.ExpiresIn.Seconds()), "/", "", false, true)

	logrus.WithField("login", user.Login).Info("user logged in")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Login:      user.Login,
		IsAdmin:    user.Role == role.Admin,
		IsEmployee: user.Role == role.Employee,
	})
}

// LogoutUser выход из системы
// @Summary Выход из системы
// @Description Отзывает токен до конца его срока и удаляет cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/account/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := middleware.TokenFromRequest(ctx)
	claims, err := h.Middleware.ParseToken(tokenString)
	if err != nil {
		errorResponse(ctx, http.StatusUnauthorized, "invalid token")
		return
	}

	// Вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if h.Blacklist == nil {
			logrus.Warn("redis is not configured, token stays valid until expiry")
		} else if err := h.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			logrus.Error("Error blacklisting token: ", err)
			errorResponse(ctx, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	successResponse(ctx, http.StatusOK, "logged out", nil)
}

// GetCurrentUser профиль текущего пользователя
// @Summary Текущий пользователь
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/account/me [get]
func (h *AuthHandler) GetCurrentUser(ctx *gin.Context) {
	current, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		errorResponse(ctx, http.StatusUnauthorized, "user is not authenticated")
		return
	}

	user, err := h.Users.GetUserByID(ctx.Request.Context(), current.ID)
	if err != nil {
		logrus.Error("Error getting user: ", err)
		errorResponse(ctx, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		errorResponse(ctx, http.StatusNotFound, "user not found")
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Login: user.Login,
		Role:  user.Role.String(),
	}
}
