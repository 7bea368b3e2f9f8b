package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Клиенты ============

type AddIndividualRequest struct {
	Pesel       string `json:"pesel" binding:"required,len=11,numeric"`
	FirstName   string `json:"firstName" binding:"required,max=50"`
	LastName    string `json:"lastName" binding:"required,max=50"`
	Address     string `json:"address" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=14"`
}

// Частичное обновление: меняются только переданные поля
type UpdateIndividualRequest struct {
	Pesel       string  `json:"pesel" binding:"required,len=11"`
	FirstName   *string `json:"firstName" binding:"omitempty,max=50"`
	LastName    *string `json:"lastName" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=14"`
}

type AddCompanyRequest struct {
	Krs         string `json:"krs" binding:"required,len=10,numeric"`
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=14"`
}

type UpdateCompanyRequest struct {
	Krs         string  `json:"krs" binding:"required,len=10"`
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=14"`
}

type IndividualResponse struct {
	Pesel       string `json:"pesel"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CompanyResponse struct {
	Krs         string `json:"krs"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ClientsResponse struct {
	Individuals  []IndividualResponse `json:"individuals"`
	Companies    []CompanyResponse    `json:"companies"`
	TotalClients int                  `json:"totalClients"`
}

// ============ Продажи ============

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SoftwareResponse struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	CurrentVersion string           `json:"currentVersion"`
	Price          decimal.Decimal  `json:"price" swaggertype:"number"`
	Category       CategoryResponse `json:"category"`
}

type CreateDiscountRequest struct {
	Percentage int       `json:"percentage" binding:"required,min=1,max=100"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
}

type DiscountResponse struct {
	ID         int       `json:"id"`
	Percentage int       `json:"percentage"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Ровно одно из IndividualPesel / CompanyKrs должно быть заполнено
type CreateContractRequest struct {
	IndividualPesel        string    `json:"individualPesel" binding:"omitempty,len=11"`
	CompanyKrs             string    `json:"companyKrs" binding:"omitempty,len=10"`
	SoftwareID             int       `json:"softwareId" binding:"required,min=1"`
	Start                  time.Time `json:"start" binding:"required"`
	End                    time.Time `json:"end" binding:"required"`
	AdditionalSupportYears int       `json:"additionalSupportYears" binding:"min=0,max=3"`
}

type CreateContractResponse struct {
	ContractID int `json:"contractId"`
}

type PaymentRequest struct {
	ContractID int             `json:"contractId" binding:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
}

type PaymentResponse struct {
	ContractID int             `json:"contractId"`
	Outcome    string          `json:"outcome"`
	Paid       decimal.Decimal `json:"paid" swaggertype:"number"`
	ToPay      decimal.Decimal `json:"toPay" swaggertype:"number"`
	Remaining  decimal.Decimal `json:"remaining" swaggertype:"number"`
	IsPaid     bool            `json:"isPaid"`
	IsSigned   bool            `json:"isSigned"`
	Refund     *string         `json:"refund,omitempty"`
}

type ContractResponse struct {
	ID                     int             `json:"id"`
	IndividualPesel        *string         `json:"individualPesel"`
	CompanyKrs             *string         `json:"companyKrs"`
	SoftwareID             int             `json:"softwareId"`
	DiscountID             *int            `json:"discountId"`
	Start                  time.Time       `json:"start"`
	End                    time.Time       `json:"end"`
	SoftwareDeadline       time.Time       `json:"softwareDeadline"`
	AdditionalSupportYears int             `json:"additionalSupportYears"`
	IsSigned               bool            `json:"isSigned"`
	IsPaid                 bool            `json:"isPaid"`
	ToPay                  decimal.Decimal `json:"toPay" swaggertype:"number"`
	Paid                   decimal.Decimal `json:"paid" swaggertype:"number"`
	Remaining              decimal.Decimal `json:"remaining" swaggertype:"number"`
}

// ============ Выручка ============

type RevenueReportRequest struct {
	SoftwareID *int   `json:"softwareId" binding:"omitempty,min=1"`
	Currency   string `json:"currency" binding:"omitempty,alpha,len=3"`
}

type RevenueResponse struct {
	CurrentRevenue   decimal.Decimal `json:"currentRevenue" swaggertype:"number"`
	PredictedRevenue decimal.Decimal `json:"predictedRevenue" swaggertype:"number"`
	Currency         string          `json:"currency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate" swaggertype:"number"`
	TotalContracts   int             `json:"totalContracts"`
	PaidContracts    int             `json:"paidContracts"`
	UnpaidContracts  int             `json:"unpaidContracts"`
	SoftwareName     *string         `json:"softwareName,omitempty"`
}

type RevenueReportResponse struct {
	Object  string          `json:"object"`
	URL     string          `json:"url"`
	Revenue RevenueResponse `json:"revenue"`
}

// ============ Аккаунт ============

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Login      string `json:"login"`
	IsAdmin    bool   `json:"isAdmin"`
	IsEmployee bool   `json:"isEmployee"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
}
