package models

import "time"

type Service struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	OwnerUserID uint `gorm:"index;not null" json:"usuario_id"`

	Name        string `gorm:"size:100;not null" json:"nome"`
	Description string `gorm:"size:255" json:"descricao"`
	Image       string `gorm:"size:255" json:"imagem"`

	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"-"`
}
