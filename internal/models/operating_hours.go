package models

import "time"

// OperatingHours define o expediente da barbearia por dia da semana.
// Sem registro (ou Active = false) = fechado naquele dia.
type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index:idx_hours_shop_weekday,unique" json:"barbershop_id"`

	Weekday int `gorm:"index:idx_hours_shop_weekday,unique" json:"weekday"` // 0=domingo .. 6=sábado

	StartTime string `gorm:"size:5" json:"start_time"` // "09:00"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "18:00"
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
