package handler

import (
	"revenue/internal/app/middleware"
	"revenue/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Клиенты ============
	clients := api.Group("/clients")
	{
		clients.GET("", authMiddleware.WithAuthCheck(), h.GetClients)
		clients.GET("/individuals", authMiddleware.WithAuthCheck(), h.GetIndividuals)
		clients.GET("/companies", authMiddleware.WithAuthCheck(), h.GetCompanies)
		clients.POST("/individual", authMiddleware.WithAuthCheck(), h.AddIndividual)
		clients.POST("/company", authMiddleware.WithAuthCheck(), h.AddCompany)

		// Только для администратора
		clients.PATCH("/individual", authMiddleware.WithAuthCheck(role.Admin), h.UpdateIndividual)
		clients.PATCH("/company", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCompany)
		clients.DELETE("/individual", authMiddleware.WithAuthCheck(role.Admin), h.DeleteIndividual)
		clients.DELETE("/company", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCompany)
	}

	// ============ Продажи ============
	sales := api.Group("/sales")
	sales.Use(authMiddleware.WithAuthCheck(role.Employee, role.Admin))
	{
		sales.GET("/software", h.GetSoftware)
		sales.POST("/discount", h.CreateDiscount)
		sales.GET("/discounts", h.GetActiveDiscounts)
		sales.POST("/contract", h.CreateContract)
		sales.DELETE("/contract/:id", h.DeleteContract)
		sales.POST("/contract/payment", h.PayForContract)
		sales.GET("/contracts", h.GetContracts)
	}

	// ============ Выручка ============
	revenue := api.Group("/revenue")
	revenue.Use(authMiddleware.WithAuthCheck(role.Employee, role.Admin))
	{
		revenue.GET("", h.GetRevenue)
		revenue.POST("/report", h.ExportRevenueReport)
	}

	// ============ Аккаунт (публичные эндпоинты) ============
	account := api.Group("/account")
	{
		account.POST("/register", h.AuthHandler.RegisterUser)
		account.POST("/login", h.AuthHandler.LoginUser)
		account.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
		account.GET("/me", authMiddleware.WithAuthCheck(), h.AuthHandler.GetCurrentUser)
	}

	api.POST("/setup/create-admin", h.AuthHandler.CreateAdmin)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
