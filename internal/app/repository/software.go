package repository

import (
	"context"

	"revenue/internal/app/ds"
)

// Методы для каталога ПО (только чтение)

func (r *Repository) GetSoftware(ctx context.Context, id int) (*ds.Software, error) {
	var software ds.Software
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&software).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &software, nil
}

func (r *Repository) ListSoftware(ctx context.Context) ([]ds.Software, error) {
	software := []ds.Software{}
	err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&software).Error
	return software, err
}

// SeedCatalog добавляет категории и ПО, если их ещё нет (используется cmd/migrate seed)
func (r *Repository) SeedCatalog(ctx context.Context, categories []ds.Category, software []ds.Software) error {
	db := r.db.WithContext(ctx)
	for i := range categories {
		if err := db.FirstOrCreate(&categories[i], ds.Category{ID: categories[i].ID}).Error; err != nil {
			return err
		}
	}
	for i := range software {
		if err := db.Omit("Category").FirstOrCreate(&software[i], ds.Software{ID: software[i].ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
