package handler

import (
	"net/http"
	"strconv"
	"strings"

	"revenue/internal/app/apperr"
	"revenue/internal/app/dto"
	"revenue/internal/app/service"

	"github.com/gin-gonic/gin"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Clients     *service.ClientService
	Sales       *service.SalesService
	Revenue     *service.RevenueService
	AuthHandler *AuthHandler
}

func NewAPIHandler(clients *service.ClientService, sales *service.SalesService, revenue *service.RevenueService, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Clients:     clients,
		Sales:       sales,
		Revenue:     revenue,
		AuthHandler: authHandler,
	}
}

// ============ ДОМЕН КЛИЕНТЫ ============

// GetClients возвращает всех клиентов
// @Summary Список клиентов
// @Description Возвращает физических лиц (без удалённых) и компании
// @Tags Clients
// @Produce json
// @Success 200 {object} dto.ClientsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	summary, err := h.Clients.ListClients(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClientsResponse{
		Individuals:  toIndividualList(summary.Individuals),
		Companies:    toCompanyList(summary.Companies),
		TotalClients: summary.TotalClients,
	})
}

// GetIndividuals
// @Summary Список физических лиц
// @Tags Clients
// @Produce json
// @Success 200 {array} dto.IndividualResponse
// @Router /api/clients/individuals [get]
func (h *APIHandler) GetIndividuals(c *gin.Context) {
	individuals, err := h.Clients.ListIndividuals(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIndividualList(individuals))
}

// GetCompanies
// @Summary Список компаний
// @Tags Clients
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Router /api/clients/companies [get]
func (h *APIHandler) GetCompanies(c *gin.Context) {
	companies, err := h.Clients.ListCompanies(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyList(companies))
}

// AddIndividual регистрирует физическое лицо
// @Summary Добавление физического лица
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.AddIndividualRequest true "Данные клиента"
// @Success 201 {object} dto.IndividualResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients/individual [post]
func (h *APIHandler) AddIndividual(c *gin.Context) {
	var req dto.AddIndividualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	individual, err := h.Clients.AddIndividual(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toIndividualResponse(*individual))
}

// AddCompany регистрирует компанию
// @Summary Добавление компании
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.AddCompanyRequest true "Данные компании"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients/company [post]
func (h *APIHandler) AddCompany(c *gin.Context) {
	var req dto.AddCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.Clients.AddCompany(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompanyResponse(*company))
}

// UpdateIndividual частично обновляет физическое лицо
// @Summary Обновление физического лица
// @Description Меняются только переданные поля (только для администратора)
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.UpdateIndividualRequest true "Изменения"
// @Success 200 {object} dto.IndividualResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/individual [patch]
func (h *APIHandler) UpdateIndividual(c *gin.Context) {
	var req dto.UpdateIndividualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	individual, err := h.Clients.UpdateIndividual(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIndividualResponse(*individual))
}

// UpdateCompany частично обновляет компанию
// @Summary Обновление компании
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.UpdateCompanyRequest true "Изменения"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/company [patch]
func (h *APIHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.Clients.UpdateCompany(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(*company))
}

// DeleteIndividual мягко удаляет физическое лицо
// @Summary Удаление физического лица
// @Tags Clients
// @Produce json
// @Param pesel query string true "PESEL"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/individual [delete]
func (h *APIHandler) DeleteIndividual(c *gin.Context) {
	if err := h.Clients.DeleteIndividual(c.Request.Context(), c.Query("pesel")); err != nil {
		handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, "individual deleted", nil)
}

// DeleteCompany - компании удалить нельзя
// @Summary Удаление компании
// @Tags Clients
// @Produce json
// @Param krs query string true "KRS"
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients/company [delete]
func (h *APIHandler) DeleteCompany(c *gin.Context) {
	handleError(c, h.Clients.DeleteCompany(c.Request.Context(), c.Query("krs")))
}

// ============ ДОМЕН ПРОДАЖИ ============

// GetSoftware возвращает каталог ПО
// @Summary Каталог ПО
// @Tags Sales
// @Produce json
// @Success 200 {array} dto.SoftwareResponse
// @Router /api/sales/software [get]
func (h *APIHandler) GetSoftware(c *gin.Context) {
	software, err := h.Sales.ListSoftware(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response := make([]dto.SoftwareResponse, len(software))
	for i, s := range software {
		response[i] = toSoftwareResponse(s)
	}
	c.JSON(http.StatusOK, response)
}

// CreateDiscount создаёт скидку
// @Summary Создание скидки
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.CreateDiscountRequest true "Процент и окно действия"
// @Success 201 {object} dto.DiscountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/sales/discount [post]
func (h *APIHandler) CreateDiscount(c *gin.Context) {
	var req dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	discount, err := h.Sales.CreateDiscount(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDiscountResponse(*discount))
}

// GetActiveDiscounts
// @Summary Действующие скидки
// @Tags Sales
// @Produce json
// @Success 200 {array} dto.DiscountResponse
// @Router /api/sales/discounts [get]
func (h *APIHandler) GetActiveDiscounts(c *gin.Context) {
	discounts, err := h.Sales.ListActiveDiscounts(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response := make([]dto.DiscountResponse, len(discounts))
	for i, d := range discounts {
		response[i] = toDiscountResponse(d)
	}
	c.JSON(http.StatusOK, response)
}

// CreateContract создаёт договор
// @Summary Создание договора
// @Description Проверяет клиента, ПО, окно подписания и активную подписку, считает цену со скидкой
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Данные договора"
// @Success 201 {object} dto.CreateContractResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/sales/contract [post]
func (h *APIHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.Sales.CreateContract(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateContractResponse{ContractID: id})
}

// DeleteContract удаляет неподписанный договор
// @Summary Удаление договора
// @Tags Sales
// @Produce json
// @Param id path int true "ID договора"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sales/contract/{id} [delete]
func (h *APIHandler) DeleteContract(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errorResponse(c, http.StatusBadRequest, "invalid contract id")
		return
	}

	if err := h.Sales.DeleteContract(c.Request.Context(), id); err != nil {
		// подписанный договор - ошибка запроса
		if apperr.KindOf(err) == apperr.Conflict {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, "contract deleted", nil)
}

// PayForContract вносит платёж по договору
// @Summary Оплата договора
// @Description Полная оплата подписывает договор. После закрытия окна договор удаляется, оплаченное возвращается
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Платёж"
// @Success 200 {object} dto.SuccessResponse{data=dto.PaymentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/sales/contract/payment [post]
func (h *APIHandler) PayForContract(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.Sales.PayForContract(c.Request.Context(), req.ContractID, req.Amount)
	if err != nil {
		handleError(c, err)
		return
	}

	if result.Outcome == service.ContractExpired {
		errorResponse(c, http.StatusConflict, result.Message())
		return
	}
	successResponse(c, http.StatusOK, result.Message(), toPaymentResponse(result))
}

// GetContracts
// @Summary Список договоров
// @Tags Sales
// @Produce json
// @Success 200 {array} dto.ContractResponse
// @Router /api/sales/contracts [get]
func (h *APIHandler) GetContracts(c *gin.Context) {
	contracts, err := h.Sales.ListContracts(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response := make([]dto.ContractResponse, len(contracts))
	for i, contract := range contracts {
		response[i] = toContractResponse(contract)
	}
	c.JSON(http.StatusOK, response)
}

// ============ ДОМЕН ВЫРУЧКА ============

// GetRevenue считает текущую и прогнозируемую выручку
// @Summary Выручка
// @Tags Revenue
// @Produce json
// @Param softwareId query int false "ID ПО"
// @Param currency query string false "Код валюты (по умолчанию PLN)"
// @Success 200 {object} dto.RevenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/revenue [get]
func (h *APIHandler) GetRevenue(c *gin.Context) {
	softwareID, ok := optionalID(c, c.Query("softwareId"))
	if !ok {
		return
	}

	revenue, err := h.Revenue.CalculateRevenue(c.Request.Context(), softwareID, c.DefaultQuery("currency", service.BaseCurrency))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRevenueResponse(revenue))
}

// ExportRevenueReport выгружает отчёт о выручке в MinIO
// @Summary Отчёт о выручке
// @Description Формирует CSV и возвращает временную ссылку на скачивание (1 час)
// @Tags Revenue
// @Accept json
// @Produce json
// @Param request body dto.RevenueReportRequest false "Фильтр и валюта"
// @Success 201 {object} dto.RevenueReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/revenue/report [post]
func (h *APIHandler) ExportRevenueReport(c *gin.Context) {
	var req dto.RevenueReportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	report, err := h.Revenue.ExportRevenueReport(c.Request.Context(), req.SoftwareID, req.Currency)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RevenueReportResponse{
		Object:  report.Object,
		URL:     report.URL,
		Revenue: toRevenueResponse(report.Revenue),
	})
}

func optionalID(c *gin.Context, raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		errorResponse(c, http.StatusBadRequest, "invalid software id")
		return nil, false
	}
	return &id, true
}
