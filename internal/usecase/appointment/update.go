package appointment

import (
	"context"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/metrics"
	"github.com/pauloryan091/agmais/internal/models"
)

// UpdateAppointmentInput is partial: nil fields keep their stored value.
type UpdateAppointmentInput struct {
	ClientID  *uint
	ServiceID *uint
	Date      *string
	Time      *string
	Status    *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Agendamento do dono
	// --------------------------------------------------
	ap, err := uc.repo.Get(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	changed := []string{}

	// --------------------------------------------------
	// 2️⃣ Referências informadas são revalidadas
	// --------------------------------------------------
	if in.ClientID != nil {
		client, err := uc.repo.GetClient(ctx, ownerID, *in.ClientID)
		if err != nil {
			return nil, err
		}
		ap.ClientID = client.ID
		changed = append(changed, "cliente_id")
	}

	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, ownerID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		ap.ServiceID = service.ID
		changed = append(changed, "servico_id")
	}

	// --------------------------------------------------
	// 3️⃣ Data, hora e status
	// --------------------------------------------------
	if in.Date != nil {
		if ap.Date, err = domain.NormalizeDate(*in.Date); err != nil {
			return nil, err
		}
		changed = append(changed, "data_agendamento")
	}

	if in.Time != nil {
		if ap.Time, err = domain.NormalizeTime(*in.Time); err != nil {
			return nil, err
		}
		changed = append(changed, "hora_agendamento")
	}

	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.SetStatus(ap, status); err != nil {
			return nil, err
		}
		changed = append(changed, "status")
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	if ap.Status != previous {
		metrics.RecordStatusChange(ap.Status)
	}

	dispatch(uc.audit, audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return ap, nil
}
