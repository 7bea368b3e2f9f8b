// Package service содержит бизнес-правила: жизненный цикл договоров,
// расчёт выручки, скидки и справочник клиентов.
package service

import (
	"context"
	"time"

	"revenue/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Коллабораторы ядра. Repository реализует все хранилища, currency.Lookup - курсы валют.

type ClientDirectory interface {
	IndividualExists(ctx context.Context, pesel string) (bool, error)
	CompanyExists(ctx context.Context, krs string) (bool, error)
}

type Catalog interface {
	GetSoftware(ctx context.Context, id int) (*ds.Software, error)
	ListSoftware(ctx context.Context) ([]ds.Software, error)
}

type DiscountLedger interface {
	ListActiveDiscounts(ctx context.Context, now time.Time) ([]ds.Discount, error)
	CreateDiscount(ctx context.Context, discount *ds.Discount) error
}

type ContractStore interface {
	NextContractID(ctx context.Context) (int, error)
	CreateContract(ctx context.Context, contract *ds.Contract) error
	GetContract(ctx context.Context, id int) (*ds.Contract, error)
	UpdateContract(ctx context.Context, contract *ds.Contract) error
	DeleteContract(ctx context.Context, id int) (bool, error)
	ListContracts(ctx context.Context) ([]ds.Contract, error)
	HasActiveSubscription(ctx context.Context, pesel, krs string, softwareID int, now time.Time) (bool, error)
}

type CurrencyLookup interface {
	GetRate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// BaseCurrency - валюта, в которой хранятся все суммы
const BaseCurrency = "PLN"
