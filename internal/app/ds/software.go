package ds

import "github.com/shopspring/decimal"

// Категории ПО - справочник
type Category struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// Каталог ПО - ТОЛЬКО справочная информация
type Software struct {
	ID             int             `gorm:"primaryKey"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Description    string          `gorm:"type:text"`
	CurrentVersion string          `gorm:"type:varchar(50);not null"`
	CategoryID     int             `gorm:"not null;index"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null"` // цена в PLN

	Category Category `gorm:"foreignKey:CategoryID"`
}
