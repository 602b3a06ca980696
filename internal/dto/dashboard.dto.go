package dto

import "time"

type RankItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Total int64  `gorm:"column:total" json:"total_agendamentos"`
}

type StatusCount struct {
	Status string
	Total  int64
}

type Stats struct {
	Today     int64     `json:"agendamentos_hoje"`
	Month     int64     `json:"agendamentos_mes"`
	Services  int64     `json:"total_servicos"`
	Clients   int64     `json:"total_clientes"`
	Pending   int64     `json:"agendamentos_pendentes"`
	Confirmed int64     `json:"agendamentos_confirmados"`
	Done      int64     `json:"agendamentos_realizados"`
	Canceled  int64     `json:"agendamentos_cancelados"`
	Revenue   float64   `json:"receita_mes"`
	Timestamp time.Time `json:"timestamp"`
}

type Dashboard struct {
	Stats           Stats             `json:"estatisticas"`
	Recent          []AppointmentView `json:"agendamentos_recentes"`
	TopServices     []RankItem        `json:"servicos_populares"`
	FrequentClients []RankItem        `json:"clientes_frequentes"`
}

type ClientHit struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
	Email string `json:"email"`
}

type ServiceHit struct {
	ID          uint   `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

type SearchResults struct {
	Clients      []ClientHit       `json:"clientes"`
	Services     []ServiceHit      `json:"servicos"`
	Appointments []AppointmentView `json:"agendamentos"`
}

type Notification struct {
	ID      int    `json:"id"`
	Title   string `json:"titulo"`
	Message string `json:"mensagem"`
	Kind    string `json:"tipo"`
	Icon    string `json:"icone"`
}

type Activity struct {
	Kind        string    `json:"tipo"`
	Description string    `json:"descricao"`
	Details     string    `json:"detalhes"`
	Status      string    `json:"status,omitempty"`
	At          time.Time `json:"data"`
}
