package appointment

import (
	"strings"
	"time"

	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, to Status) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}
	ap.Status = string(to)
	return nil
}

// NormalizeDate accepts YYYY-MM-DD and returns it unchanged when valid.
func NormalizeDate(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return "", httperr.ErrValidation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD")
	}
	return d.Format(DateLayout), nil
}

// NormalizeTime accepts HH:MM and HH:MM:SS, keeping minutes precision.
func NormalizeTime(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", httperr.ErrValidation("invalid_time", "Hora inválida. Use o formato HH:MM")
}

// ===============================
// Snapshot
// ===============================

// Snapshot is what the notifier needs to describe an appointment event.
type Snapshot struct {
	AppointmentID uint
	ClientName    string
	ClientEmail   string
	ServiceName   string
	Date          string
	Time          string
	Status        Status
}

func SnapshotOf(v *dto.AppointmentView) Snapshot {
	return Snapshot{
		AppointmentID: v.ID,
		ClientName:    deref(v.ClientName),
		ClientEmail:   deref(v.ClientEmail),
		ServiceName:   deref(v.ServiceName),
		Date:          v.Date,
		Time:          v.Time,
		Status:        Status(v.Status),
	}
}

func Summary(v *dto.AppointmentView) dto.StatusSummary {
	return dto.StatusSummary{
		ID:          v.ID,
		Status:      v.Status,
		ClientName:  v.ClientName,
		ServiceName: v.ServiceName,
		Date:        v.Date,
		Time:        v.Time,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
