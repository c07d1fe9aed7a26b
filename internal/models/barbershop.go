package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Pausa de almoço (vale para a loja inteira)
	LunchStart   string `gorm:"size:5" json:"lunch_start"`
	LunchEnd     string `gorm:"size:5" json:"lunch_end"`
	LunchEnabled bool   `gorm:"default:false" json:"lunch_enabled"`

	MinAdvanceMinutes int `gorm:"default:120" json:"min_advance_minutes"`

	// Lembretes via WhatsApp
	WhatsappConnected       bool   `gorm:"default:false" json:"whatsapp_connected"`
	ReminderTemplate        string `gorm:"type:text" json:"reminder_template"`
	ReminderIntervalMinutes int    `gorm:"default:60" json:"reminder_interval_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
