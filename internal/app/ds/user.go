package ds

import (
	"time"

	"revenue/internal/app/role"
)

// Учётные записи сотрудников (Admin / Employee)
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Login        string    `gorm:"type:varchar(50);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         role.Role `gorm:"type:int;default:0;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
