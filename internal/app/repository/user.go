package repository

import (
	"context"

	"revenue/internal/app/ds"
	"revenue/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if missing, err := notFound(err); missing || err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.User{}).Where("role = ?", role.Admin).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(ctx context.Context, login, passwordHash string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:        login,
		PasswordHash: passwordHash,
		Role:         userRole,
	}

	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
