package appointment

import (
	"strings"

	"github.com/pauloryan091/agmais/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDone      Status = "done"
	StatusCanceled  Status = "canceled"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusDone, StatusCanceled}

// names accepted from older clients
var legacyNames = map[string]Status{
	"pendente":   StatusPending,
	"confirmado": StatusConfirmed,
	"realizado":  StatusDone,
	"cancelado":  StatusCanceled,
}

// ===============================
// Validations
// ===============================

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// ParseStatus accepts the canonical names and the legacy Portuguese ones.
func ParseStatus(raw string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", httperr.ErrValidation("status_required", "Status é obrigatório")
	}

	if s, ok := legacyNames[v]; ok {
		return s, nil
	}

	s := Status(v)
	if !s.Valid() {
		return "", httperr.ErrValidation(
			"invalid_status",
			"Status inválido. Use: pending, confirmed, done, canceled",
		)
	}
	return s, nil
}

// CanTransition allows every move between valid statuses, self included.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrValidation("invalid_status", "Status inválido")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
