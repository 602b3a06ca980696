package appointment

import (
	"context"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/metrics"
	"github.com/pauloryan091/agmais/internal/notifier"
)

type SetStatusOutput struct {
	Status   domain.Status
	Summary  dto.StatusSummary
	Advisory Advisory
}

type SetStatus struct {
	repo     domain.Repository
	notifier notifier.Notifier
	audit    *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	notifier notifier.Notifier,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
	rawStatus string,
) (*SetStatusOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Status válido
	// --------------------------------------------------
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Agendamento do dono
	// --------------------------------------------------
	ap, err := uc.repo.Get(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	if err := domain.SetStatus(ap, status); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	metrics.RecordStatusChange(ap.Status)

	dispatch(uc.audit, audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.Status,
		},
	})

	// --------------------------------------------------
	// 3️⃣ Snapshot com cliente e serviço
	// --------------------------------------------------
	view, err := uc.repo.GetView(ctx, ownerID, ap.ID)
	if err != nil {
		return nil, err
	}

	adv := notifyClient(ctx, uc.notifier, uc.audit, ownerID, domain.SnapshotOf(view))

	return &SetStatusOutput{
		Status:   status,
		Summary:  domain.Summary(view),
		Advisory: adv,
	}, nil
}
