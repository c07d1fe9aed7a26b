package models

import "time"

// RecurringAppointment é um compromisso fixo semanal (ex: cliente toda
// sexta às 10h). Nunca vira uma linha de Appointment: o cálculo de
// disponibilidade o materializa como intervalo ocupado virtual.
type RecurringAppointment struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	BarberID *uint `json:"barber_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientName string `gorm:"size:100" json:"client_name"`

	Weekday   int    `json:"weekday"`                   // 0=domingo .. 6=sábado
	TimeOfDay string `gorm:"size:5" json:"time_of_day"` // "10:00"

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Active    bool       `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
