package appointment

import (
	"context"
	"strings"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/notifier"
)

const (
	msgEmailSent     = "Email enviado com sucesso!"
	msgEmailMissing  = "Cliente não tem email cadastrado"
	msgEmailNotSent  = "Email não enviado: "
	actionNotifyOK   = "notification_sent"
	actionNotifyFail = "notification_failed"
)

// Advisory is the notification outcome appended to a successful response.
type Advisory struct {
	Sent    bool
	Message string
}

// notifyClient never fails: every outcome becomes an advisory text.
func notifyClient(
	ctx context.Context,
	n notifier.Notifier,
	dispatcher *audit.Dispatcher,
	ownerID uint,
	snap domain.Snapshot,
) Advisory {

	if strings.TrimSpace(snap.ClientEmail) == "" {
		return Advisory{Message: msgEmailMissing}
	}

	res := n.Notify(ctx, notifier.Notification{
		To:          snap.ClientEmail,
		ClientName:  snap.ClientName,
		ServiceName: snap.ServiceName,
		Date:        snap.Date,
		Time:        snap.Time,
		Status:      string(snap.Status),
	})

	action := actionNotifyOK
	adv := Advisory{Sent: true, Message: msgEmailSent}
	if !res.Sent {
		action = actionNotifyFail
		adv = Advisory{Message: msgEmailNotSent + res.Message}
	}

	meta := map[string]any{
		"to":     snap.ClientEmail,
		"status": snap.Status,
		"result": res.Message,
	}
	if res.Err != nil {
		meta["error"] = res.Err.Error()
	}

	dispatch(dispatcher, audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &snap.AppointmentID,
		Metadata: meta,
	})

	return adv
}

func dispatch(d *audit.Dispatcher, ev audit.Event) {
	if d == nil {
		return
	}
	d.Dispatch(ev)
}
