package service

import (
	"context"
	"fmt"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"

	"github.com/sirupsen/logrus"
)

// CreateDiscount регистрирует скидку; начало окна не может быть раньше сегодняшнего дня (UTC)
func (s *SalesService) CreateDiscount(ctx context.Context, req dto.CreateDiscountRequest) (*ds.Discount, error) {
	if req.Percentage < 1 || req.Percentage > 100 {
		return nil, apperr.Invalid("discount percentage must be between 1 and 100")
	}

	start, end := req.Start.UTC(), req.End.UTC()
	if !start.Before(end) {
		return nil, apperr.Invalid("start date must be before end date")
	}
	now := s.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return nil, apperr.Invalid("start date cannot be in the past")
	}

	discount := &ds.Discount{Percentage: req.Percentage, Start: start, End: end}
	if err := s.discounts.CreateDiscount(ctx, discount); err != nil {
		return nil, fmt.Errorf("create discount: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"discount_id": discount.ID,
		"percentage":  discount.Percentage,
	}).Info("discount created")
	return discount, nil
}

func (s *SalesService) ListActiveDiscounts(ctx context.Context) ([]ds.Discount, error) {
	discounts, err := s.discounts.ListActiveDiscounts(ctx, s.clock())
	if err != nil {
		return nil, fmt.Errorf("list active discounts: %w", err)
	}
	return discounts, nil
}
