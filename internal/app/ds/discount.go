package ds

import "time"

// Скидки с окном действия [Start, End] включительно
type Discount struct {
	ID         int       `gorm:"primaryKey;autoIncrement:false"`
	Percentage int       `gorm:"not null"` // 1-100
	Start      time.Time `gorm:"column:start_at;not null;index"`
	End        time.Time `gorm:"column:end_at;not null;index"`
}

// ActiveAt - скидка действует в момент t
func (d *Discount) ActiveAt(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}
