package dto

import "time"

// AppointmentView is an appointment joined with its client and service.
// Joined fields are nil when the referenced row no longer exists.
type AppointmentView struct {
	ID        uint   `json:"id"`
	ClientID  uint   `json:"cliente_id"`
	ServiceID uint   `json:"servico_id"`
	Date      string `gorm:"column:appointment_date" json:"data_agendamento"`
	Time      string `gorm:"column:appointment_time" json:"hora_agendamento"`
	Status    string `json:"status"`

	ClientName  *string `json:"cliente_nome"`
	ClientPhone *string `json:"cliente_telefone"`
	ClientEmail *string `json:"cliente_email"`
	ServiceName *string `json:"servico_nome"`

	CreatedAt time.Time `json:"-"`
}

// StatusSummary is returned after a status change.
type StatusSummary struct {
	ID          uint    `json:"id"`
	Status      string  `json:"status"`
	ClientName  *string `json:"cliente_nome"`
	ServiceName *string `json:"servico_nome"`
	Date        string  `json:"data_agendamento"`
	Time        string  `json:"hora_agendamento"`
}
