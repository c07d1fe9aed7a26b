package models

import "time"

type ReminderJob struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	ScheduledFor time.Time `gorm:"index" json:"scheduled_for"`

	// Template com placeholders ({nome}, {data}, {hora}, {servico}),
	// renderizado só na hora do envio
	Message string `gorm:"type:text" json:"message"`
	Phone   string `gorm:"size:20" json:"phone"`

	Status      string `gorm:"size:20;default:'pending';index" json:"status"`
	ErrorReason string `gorm:"size:255" json:"error_reason"`

	// UUID da instância do dispatcher que reivindicou o job
	ClaimedBy string     `gorm:"size:36" json:"claimed_by"`
	SentAt    *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
