package service

import (
	"context"
	"fmt"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	minContractWindow = 3 * 24 * time.Hour
	maxContractWindow = 30 * 24 * time.Hour
	maxSupportYears   = 3
)

// стоимость одного года дополнительной поддержки, PLN
var additionalSupportCost = decimal.NewFromInt(1000)

type SalesService struct {
	clients   ClientDirectory
	catalog   Catalog
	discounts DiscountLedger
	contracts ContractStore
	currency  CurrencyLookup
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewSalesService(clients ClientDirectory, catalog Catalog, discounts DiscountLedger,
	contracts ContractStore, currency CurrencyLookup, log logrus.FieldLogger) *SalesService {
	return &SalesService{
		clients:   clients,
		catalog:   catalog,
		discounts: discounts,
		contracts: contracts,
		currency:  currency,
		log:       log,
		now:       time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (s *SalesService) WithClock(now func() time.Time) *SalesService {
	s.now = now
	return s
}

func (s *SalesService) clock() time.Time {
	return s.now().UTC()
}

// CreateContract проверяет заявку и создаёт неподписанный договор, возвращает его id.
//
// Проверка активной подписки и вставка не атомарны: два одновременных запроса
// для одного клиента и ПО могут оба пройти проверку.
func (s *SalesService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (int, error) {
	// 1. ровно один клиент
	hasIndividual, hasCompany := req.IndividualPesel != "", req.CompanyKrs != ""
	if hasIndividual == hasCompany {
		return 0, apperr.Invalid("must provide exactly one client identity")
	}

	if req.AdditionalSupportYears < 0 || req.AdditionalSupportYears > maxSupportYears {
		return 0, apperr.Invalid("additional support years must be between 0 and %d", maxSupportYears)
	}

	// 2. клиент существует
	var (
		exists bool
		err    error
	)
	if hasIndividual {
		exists, err = s.clients.IndividualExists(ctx, req.IndividualPesel)
	} else {
		exists, err = s.clients.CompanyExists(ctx, req.CompanyKrs)
	}
	if err != nil {
		return 0, fmt.Errorf("check client: %w", err)
	}
	if !exists {
		return 0, apperr.Invalid("client does not exist")
	}

	// 3. ПО существует
	software, err := s.catalog.GetSoftware(ctx, req.SoftwareID)
	if err != nil {
		return 0, fmt.Errorf("get software: %w", err)
	}
	if software == nil {
		return 0, apperr.NotFoundf("software %d does not exist", req.SoftwareID)
	}

	// 4-5. окно подписания: начало раньше конца, длительность 3..30 дней
	start, end := req.Start.UTC(), req.End.UTC()
	if !start.Before(end) {
		return 0, apperr.Invalid("start date must be before end date")
	}
	if window := end.Sub(start); window < minContractWindow || window > maxContractWindow {
		return 0, apperr.Invalid("contract duration must be between 3 and 30 days")
	}

	// 6. нет активной подписки на это ПО
	now := s.clock()
	active, err := s.contracts.HasActiveSubscription(ctx, req.IndividualPesel, req.CompanyKrs, req.SoftwareID, now)
	if err != nil {
		return 0, fmt.Errorf("check active subscription: %w", err)
	}
	if active {
		return 0, apperr.Conflictf("client already has an active subscription for this software")
	}

	discount, err := s.bestActiveDiscount(ctx, now)
	if err != nil {
		return 0, err
	}

	contract := &ds.Contract{
		SoftwareID:       software.ID,
		Start:            start,
		End:              end,
		SoftwareDeadline: start.AddDate(1+req.AdditionalSupportYears, 0, 0),
		ToPay:            contractPrice(software.Price, req.AdditionalSupportYears, discount),
		Paid:             decimal.Zero,
	}
	if hasIndividual {
		contract.IndividualPesel = &req.IndividualPesel
	} else {
		contract.CompanyKrs = &req.CompanyKrs
	}
	if discount != nil {
		contract.DiscountID = &discount.ID
	}

	contract.ID, err = s.contracts.NextContractID(ctx)
	if err != nil {
		return 0, fmt.Errorf("next contract id: %w", err)
	}
	if err := s.contracts.CreateContract(ctx, contract); err != nil {
		return 0, fmt.Errorf("create contract: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"contract_id": contract.ID,
		"software_id": contract.SoftwareID,
		"to_pay":      contract.ToPay.StringFixed(2),
	}).Info("contract created")

	return contract.ID, nil
}

// bestActiveDiscount выбирает активную скидку с наибольшим процентом.
// При равенстве побеждает первая по порядку хранилища.
func (s *SalesService) bestActiveDiscount(ctx context.Context, now time.Time) (*ds.Discount, error) {
	active, err := s.discounts.ListActiveDiscounts(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list active discounts: %w", err)
	}

	var best *ds.Discount
	for i := range active {
		if best == nil || active[i].Percentage > best.Percentage {
			best = &active[i]
		}
	}
	return best, nil
}

// contractPrice = (цена + 1000 * годы поддержки) * (1 - процент/100), округление до копеек
func contractPrice(price decimal.Decimal, supportYears int, discount *ds.Discount) decimal.Decimal {
	total := price.Add(additionalSupportCost.Mul(decimal.NewFromInt(int64(supportYears))))
	if discount != nil {
		reduction := total.Mul(decimal.NewFromInt(int64(discount.Percentage))).Div(decimal.NewFromInt(100))
		total = total.Sub(reduction)
	}
	return total.Round(2)
}

// DeleteContract удаляет неподписанный договор
func (s *SalesService) DeleteContract(ctx context.Context, id int) error {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return fmt.Errorf("get contract: %w", err)
	}
	if contract == nil {
		return apperr.NotFoundf("contract not found")
	}
	if contract.IsSigned {
		return apperr.Conflictf("cannot delete a signed contract")
	}

	deleted, err := s.contracts.DeleteContract(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if !deleted {
		return apperr.NotFoundf("contract not found")
	}

	s.log.WithField("contract_id", id).Info("contract deleted")
	return nil
}

// ListContracts возвращает все договоры; производные поля считает ds.Contract
func (s *SalesService) ListContracts(ctx context.Context) ([]ds.Contract, error) {
	contracts, err := s.contracts.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return contracts, nil
}

func (s *SalesService) ListSoftware(ctx context.Context) ([]ds.Software, error) {
	software, err := s.catalog.ListSoftware(ctx)
	if err != nil {
		return nil, fmt.Errorf("list software: %w", err)
	}
	return software, nil
}
