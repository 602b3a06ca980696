package appointment

import (
	"context"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
	"github.com/pauloryan091/agmais/internal/notifier"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID   uint
	ClientID  uint
	ServiceID uint
	Date      string
	Time      string
	Status    string
}

type CreateAppointmentOutput struct {
	Appointment *models.Appointment
	Advisory    Advisory
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier notifier.Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notifier.Notifier,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.ClientID == 0 || in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"Cliente, serviço, data e hora são obrigatórios",
		)
	}

	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	hour, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Cliente e serviço do mesmo dono
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.OwnerID, in.ClientID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.OwnerID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	ap := &models.Appointment{
		OwnerUserID: in.OwnerID,
		ClientID:    client.ID,
		ServiceID:   service.ID,
		Date:        date,
		Time:        hour,
		Status:      string(status),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	dispatch(uc.audit, audit.Event{
		OwnerID:  in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":   ap.Date,
			"time":   ap.Time,
			"status": ap.Status,
		},
	})

	// --------------------------------------------------
	// 4️⃣ Notificação (nunca desfaz o agendamento)
	// --------------------------------------------------
	adv := notifyClient(ctx, uc.notifier, uc.audit, in.OwnerID, domain.Snapshot{
		AppointmentID: ap.ID,
		ClientName:    client.Name,
		ClientEmail:   client.Email,
		ServiceName:   service.Name,
		Date:          ap.Date,
		Time:          ap.Time,
		Status:        status,
	})

	return &CreateAppointmentOutput{
		Appointment: ap,
		Advisory:    adv,
	}, nil
}
