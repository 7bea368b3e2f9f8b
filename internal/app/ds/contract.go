package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Договор: ровно один клиент (физ. лицо ИЛИ компания) и одна покупка ПО.
// Start/End - окно подписания и оплаты, а не период подписки.
type Contract struct {
	ID               int             `gorm:"primaryKey;autoIncrement:false"`
	IndividualPesel  *string         `gorm:"type:char(11);index"`
	CompanyKrs       *string         `gorm:"type:char(10);index"`
	SoftwareID       int             `gorm:"not null;index"`
	DiscountID       *int            `gorm:"default:null"`
	Start            time.Time       `gorm:"column:window_start;not null"`
	End              time.Time       `gorm:"column:window_end;not null"`
	SoftwareDeadline time.Time       `gorm:"not null"` // Start + 1 год + годы доп. поддержки
	IsSigned         bool            `gorm:"not null;default:false"`
	IsPaid           bool            `gorm:"not null;default:false"`
	ToPay            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Paid             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// Remaining - остаток к оплате
func (c *Contract) Remaining() decimal.Decimal {
	return c.ToPay.Sub(c.Paid)
}

// AdditionalSupportYears восстанавливается из разницы лет, а не хранится:
// (год дедлайна - год начала) - 1. При несогласованных датах может быть отрицательным.
func (c *Contract) AdditionalSupportYears() int {
	return (c.SoftwareDeadline.Year() - c.Start.Year()) - 1
}
