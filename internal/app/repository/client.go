package repository

import (
	"context"
	"time"

	"revenue/internal/app/ds"
)

// Методы для работы с клиентами

// IndividualExists - физ. лицо существует и не удалено
func (r *Repository) IndividualExists(ctx context.Context, pesel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Individual{}).
		Where("pesel = ? AND deleted_at IS NULL", pesel).
		Count(&count).Error
	return count > 0, err
}

// IndividualRegistered - ключ занят, включая мягко удалённые записи
func (r *Repository) IndividualRegistered(ctx context.Context, pesel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Individual{}).Where("pesel = ?", pesel).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CompanyExists(ctx context.Context, krs string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Company{}).Where("krs = ?", krs).Count(&count).Error
	return count > 0, err
}

// GetIndividual возвращает активное физ. лицо или nil
func (r *Repository) GetIndividual(ctx context.Context, pesel string) (*ds.Individual, error) {
	var individual ds.Individual
	err := r.db.WithContext(ctx).Where("pesel = ? AND deleted_at IS NULL", pesel).First(&individual).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &individual, nil
}

func (r *Repository) GetCompany(ctx context.Context, krs string) (*ds.Company, error) {
	var company ds.Company
	err := r.db.WithContext(ctx).Where("krs = ?", krs).First(&company).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *Repository) ListIndividuals(ctx context.Context) ([]ds.Individual, error) {
	individuals := []ds.Individual{}
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("pesel").Find(&individuals).Error
	return individuals, err
}

func (r *Repository) ListCompanies(ctx context.Context) ([]ds.Company, error) {
	companies := []ds.Company{}
	err := r.db.WithContext(ctx).Order("krs").Find(&companies).Error
	return companies, err
}

func (r *Repository) CreateIndividual(ctx context.Context, individual *ds.Individual) error {
	return r.db.WithContext(ctx).Create(individual).Error
}

func (r *Repository) CreateCompany(ctx context.Context, company *ds.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *Repository) UpdateIndividual(ctx context.Context, individual *ds.Individual) error {
	return r.db.WithContext(ctx).Save(individual).Error
}

func (r *Repository) UpdateCompany(ctx context.Context, company *ds.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// SoftDeleteIndividual проставляет дату удаления, физически запись остаётся
func (r *Repository) SoftDeleteIndividual(ctx context.Context, pesel string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&ds.Individual{}).
		Where("pesel = ? AND deleted_at IS NULL", pesel).
		Update("deleted_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
