package service

import (
	"context"
	"testing"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiscount(t *testing.T) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     dto.CreateDiscountRequest
		message string
	}{
		{
			name: "starts earlier today",
			req:  dto.CreateDiscountRequest{Percentage: 15, Start: today, End: today.AddDate(0, 1, 0)},
		},
		{
			name:    "starts yesterday",
			req:     dto.CreateDiscountRequest{Percentage: 15, Start: today.Add(-time.Second), End: today.AddDate(0, 1, 0)},
			message: "start date cannot be in the past",
		},
		{
			name:    "end before start",
			req:     dto.CreateDiscountRequest{Percentage: 15, Start: today.AddDate(0, 0, 2), End: today.AddDate(0, 0, 1)},
			message: "start date must be before end date",
		},
		{
			name:    "zero percent",
			req:     dto.CreateDiscountRequest{Percentage: 0, Start: today, End: today.AddDate(0, 0, 1)},
			message: "discount percentage must be between 1 and 100",
		},
		{
			name:    "over one hundred percent",
			req:     dto.CreateDiscountRequest{Percentage: 101, Start: today, End: today.AddDate(0, 0, 1)},
			message: "discount percentage must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalesFixture()
			discount, err := f.svc.CreateDiscount(context.Background(), tt.req)
			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, discount.ID)
				assert.Len(t, f.discounts.discounts, 1)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
			assert.EqualError(t, err, tt.message)
			assert.Empty(t, f.discounts.discounts)
		})
	}
}

func TestListActiveDiscounts(t *testing.T) {
	f := newSalesFixture()
	ctx := context.Background()

	_, err := f.svc.CreateDiscount(ctx, dto.CreateDiscountRequest{Percentage: 10, Start: now.Add(-time.Hour), End: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = f.svc.CreateDiscount(ctx, dto.CreateDiscountRequest{Percentage: 20, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)})
	require.NoError(t, err)

	active, err := f.svc.ListActiveDiscounts(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 10, active[0].Percentage)
}
