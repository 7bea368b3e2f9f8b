package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ContractLister interface {
	ListContracts(ctx context.Context) ([]ds.Contract, error)
}

// ReportStore - хранилище выгруженных отчётов (MinIO)
type ReportStore interface {
	PutObject(ctx context.Context, name string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, name string) (string, error)
}

type Revenue struct {
	CurrentRevenue   decimal.Decimal
	PredictedRevenue decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	TotalContracts   int
	PaidContracts    int
	UnpaidContracts  int
	SoftwareName     *string
}

type RevenueReport struct {
	Object  string
	URL     string
	Revenue *Revenue
}

type RevenueService struct {
	contracts ContractLister
	catalog   Catalog
	currency  CurrencyLookup
	reports   ReportStore
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewRevenueService; reports может быть nil, тогда выгрузка отчётов недоступна
func NewRevenueService(contracts ContractLister, catalog Catalog, currency CurrencyLookup,
	reports ReportStore, log logrus.FieldLogger) *RevenueService {
	return &RevenueService{
		contracts: contracts,
		catalog:   catalog,
		currency:  currency,
		reports:   reports,
		log:       log,
		now:       time.Now,
	}
}

func (s *RevenueService) WithClock(now func() time.Time) *RevenueService {
	s.now = now
	return s
}

// ExchangeRate возвращает курс PLN -> currency; пустой код означает PLN
func (s *RevenueService) ExchangeRate(ctx context.Context, currency string) (string, decimal.Decimal, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == BaseCurrency {
		return BaseCurrency, decimal.NewFromInt(1), nil
	}
	rate, err := s.currency.GetRate(ctx, code)
	if err != nil {
		return "", decimal.Zero, err
	}
	return code, rate, nil
}

// CalculateRevenue считает текущую (получено по подписанным оплаченным договорам)
// и прогнозируемую (плюс неоплаченные договоры с открытым окном) выручку.
func (s *RevenueService) CalculateRevenue(ctx context.Context, softwareID *int, currency string) (*Revenue, error) {
	code, rate, err := s.ExchangeRate(ctx, currency)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contracts.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	now := s.now().UTC()
	result := &Revenue{
		CurrentRevenue: decimal.Zero,
		Currency:       code,
		ExchangeRate:   rate,
	}
	pending := decimal.Zero
	for _, c := range contracts {
		if softwareID != nil && c.SoftwareID != *softwareID {
			continue
		}
		result.TotalContracts++
		if c.IsPaid {
			result.PaidContracts++
		}
		if c.IsPaid && c.IsSigned {
			result.CurrentRevenue = result.CurrentRevenue.Add(c.Paid)
		}
		if !c.IsPaid && c.End.After(now) {
			pending = pending.Add(c.ToPay)
		}
	}
	result.UnpaidContracts = result.TotalContracts - result.PaidContracts
	result.PredictedRevenue = result.CurrentRevenue.Add(pending)

	if code != BaseCurrency {
		result.CurrentRevenue = result.CurrentRevenue.Mul(rate)
		result.PredictedRevenue = result.PredictedRevenue.Mul(rate)
	}
	result.CurrentRevenue = result.CurrentRevenue.Round(2)
	result.PredictedRevenue = result.PredictedRevenue.Round(2)

	if softwareID != nil {
		software, err := s.catalog.GetSoftware(ctx, *softwareID)
		if err != nil {
			return nil, fmt.Errorf("get software: %w", err)
		}
		if software != nil {
			result.SoftwareName = &software.Name
		}
	}

	return result, nil
}

// ExportRevenueReport выгружает расчёт выручки в CSV и возвращает временную ссылку на него
func (s *RevenueService) ExportRevenueReport(ctx context.Context, softwareID *int, currency string) (*RevenueReport, error) {
	if s.reports == nil {
		return nil, apperr.New(apperr.Internal, fmt.Errorf("report storage is not configured"))
	}

	revenue, err := s.CalculateRevenue(ctx, softwareID, currency)
	if err != nil {
		return nil, err
	}

	data, err := revenueCSV(revenue, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	object := fmt.Sprintf("reports/revenue_%s.csv", uuid.New())

	if err := s.reports.PutObject(ctx, object, data, "text/csv"); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}
	url, err := s.reports.PresignedURL(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	s.log.WithField("object", object).Info("revenue report exported")
	return &RevenueReport{Object: object, URL: url, Revenue: revenue}, nil
}

func revenueCSV(r *Revenue, generatedAt time.Time) ([]byte, error) {
	software := ""
	if r.SoftwareName != nil {
		software = *r.SoftwareName
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := [][]string{
		{"generated_at", "software", "currency", "exchange_rate", "current_revenue",
			"predicted_revenue", "total_contracts", "paid_contracts", "unpaid_contracts"},
		{
			generatedAt.Format(time.RFC3339),
			software,
			r.Currency,
			r.ExchangeRate.String(),
			r.CurrentRevenue.StringFixed(2),
			r.PredictedRevenue.StringFixed(2),
			strconv.Itoa(r.TotalContracts),
			strconv.Itoa(r.PaidContracts),
			strconv.Itoa(r.UnpaidContracts),
		},
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
