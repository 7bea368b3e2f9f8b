package repository

import (
	"context"
	"time"

	"revenue/internal/app/ds"
)

// Методы для договоров

// NextContractID - следующий id договора (max + 1). Не атомарно относительно параллельных вставок
func (r *Repository) NextContractID(ctx context.Context) (int, error) {
	return nextID(r.db.WithContext(ctx).Model(&ds.Contract{}))
}

func (r *Repository) CreateContract(ctx context.Context, contract *ds.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *Repository) GetContract(ctx context.Context, id int) (*ds.Contract, error) {
	var contract ds.Contract
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateContract сохраняет изменяемые поля: оплату и флаги
func (r *Repository) UpdateContract(ctx context.Context, contract *ds.Contract) error {
	return r.db.WithContext(ctx).Model(&ds.Contract{}).
		Where("id = ?", contract.ID).
		Updates(map[string]interface{}{
			"paid":      contract.Paid,
			"is_paid":   contract.IsPaid,
			"is_signed": contract.IsSigned,
		}).Error
}

// DeleteContract физически удаляет договор; false - если удалять было нечего
func (r *Repository) DeleteContract(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ds.Contract{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ListContracts(ctx context.Context) ([]ds.Contract, error) {
	contracts := []ds.Contract{}
	err := r.db.WithContext(ctx).Order("id").Find(&contracts).Error
	return contracts, err
}

// HasActiveSubscription - у клиента есть подписанный договор на это ПО с дедлайном строго в будущем
func (r *Repository) HasActiveSubscription(ctx context.Context, pesel, krs string, softwareID int, now time.Time) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ds.Contract{}).
		Where("software_id = ? AND software_deadline > ? AND is_signed = ?", softwareID, now, true)

	switch {
	case pesel != "":
		query = query.Where("individual_pesel = ?", pesel)
	case krs != "":
		query = query.Where("company_krs = ?", krs)
	default:
		return false, nil
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
