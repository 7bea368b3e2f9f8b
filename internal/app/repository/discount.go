package repository

import (
	"context"
	"time"

	"revenue/internal/app/ds"
)

// Методы для скидок

// CreateDiscount присваивает id = max + 1 и сохраняет скидку
func (r *Repository) CreateDiscount(ctx context.Context, discount *ds.Discount) error {
	db := r.db.WithContext(ctx)
	id, err := nextID(db.Model(&ds.Discount{}))
	if err != nil {
		return err
	}
	discount.ID = id
	return db.Create(discount).Error
}

// ListActiveDiscounts - скидки, окно которых содержит now, по возрастанию id
func (r *Repository) ListActiveDiscounts(ctx context.Context, now time.Time) ([]ds.Discount, error) {
	discounts := []ds.Discount{}
	err := r.db.WithContext(ctx).
		Where("start_at <= ? AND end_at >= ?", now, now).
		Order("id").
		Find(&discounts).Error
	return discounts, err
}
