package ds

import "time"

// 1. Физические лица (ключ - PESEL, 11 символов)
type Individual struct {
	Pesel       string     `gorm:"type:char(11);primaryKey" json:"pesel"`
	FirstName   string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(50);not null" json:"last_name"`
	Address     string     `gorm:"type:varchar(200);not null" json:"address"`
	Email       string     `gorm:"type:varchar(100);not null" json:"email"`
	PhoneNumber string     `gorm:"type:varchar(14);not null" json:"phone_number"`
	DeletedAt   *time.Time `gorm:"default:null;index" json:"deleted_at,omitempty"` // мягкое удаление
}

// IsDeleted - запись помечена удалённой и не участвует в активных выборках
func (i *Individual) IsDeleted() bool {
	return i.DeletedAt != nil
}

// 2. Компании (ключ - KRS, 10 символов). Удаление не поддерживается
type Company struct {
	Krs         string `gorm:"type:char(10);primaryKey" json:"krs"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Address     string `gorm:"type:varchar(200);not null" json:"address"`
	Email       string `gorm:"type:varchar(100);not null" json:"email"`
	PhoneNumber string `gorm:"type:varchar(14);not null" json:"phone_number"`
}
