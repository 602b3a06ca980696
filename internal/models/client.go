package models

import "time"

// Cliente simples, sem login, vinculado ao usuário dono
type Client struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	OwnerUserID uint `gorm:"index;not null" json:"usuario_id"`

	Name  string `gorm:"size:100;not null" json:"nome"`
	Phone string `gorm:"size:20" json:"telefone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"-"`
}
