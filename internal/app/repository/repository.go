package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"revenue/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	repo := NewWithDB(db)
	if err := repo.AutoMigrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewWithDB оборачивает уже открытое подключение (используется в тестах и cmd/migrate)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Автоматическая миграция всех таблиц
func (r *Repository) AutoMigrate() error {
	err := r.db.AutoMigrate(Models()...)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Models - все модели, управляемые репозиторием, в порядке зависимостей
func Models() []any {
	return []any{
		&ds.User{},
		&ds.Individual{},
		&ds.Company{},
		&ds.Category{},
		&ds.Software{},
		&ds.Discount{},
		&ds.Contract{},
	}
}

// notFound превращает gorm.ErrRecordNotFound в (true, nil), прочие ошибки отдаёт как есть
func notFound(err error) (bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, err
}

// nextID - max(id) + 1 для таблицы модели запроса, 1 для пустой таблицы
func nextID(query *gorm.DB) (int, error) {
	var maxID sql.NullInt64
	if err := query.Select("MAX(id)").Row().Scan(&maxID); err != nil {
		return 0, err
	}
	if !maxID.Valid {
		return 1, nil
	}
	return int(maxID.Int64) + 1, nil
}
