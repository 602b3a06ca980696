package models

import "time"

// Appointment keeps only ids of its client and service. Rows survive the
// deletion of either reference.
type Appointment struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	OwnerUserID uint `gorm:"index;not null" json:"usuario_id"`

	ClientID  uint `gorm:"index;not null" json:"cliente_id"`
	ServiceID uint `gorm:"index;not null" json:"servico_id"`

	// YYYY-MM-DD and HH:MM, so text ordering matches chronological ordering.
	Date string `gorm:"column:appointment_date;size:10;not null;index" json:"data_agendamento"`
	Time string `gorm:"column:appointment_time;size:5;not null" json:"hora_agendamento"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"-"`
}
