package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/metrics"
)

const (
	msgNoTransport = "Nenhum transporte de email configurado"
	msgSMTPFailed  = "Erro no envio de email. Verifique as credenciais SMTP."
	msgCompose     = "Erro ao montar o email"
)

// Chain tries each transport in order and stops at the first success.
type Chain struct {
	transports []Transport
	timeout    time.Duration
	log        logrus.FieldLogger
}

func NewChain(log logrus.FieldLogger, timeout time.Duration, transports ...Transport) *Chain {
	return &Chain{transports: transports, timeout: timeout, log: log}
}

func (c *Chain) Notify(ctx context.Context, n Notification) Result {
	if reason, ok := checkAddress(n.To); !ok {
		metrics.RecordNotification("none", "skipped")
		return Result{Sent: false, Message: reason}
	}

	msg, err := Compose(n)
	if err != nil {
		c.log.WithError(err).Error("compose notification")
		return Result{Sent: false, Message: msgCompose, Err: httperr.ErrNotifier(msgCompose, err)}
	}

	if len(c.transports) == 0 {
		metrics.RecordNotification("none", "failed")
		return Result{Sent: false, Message: msgNoTransport, Err: httperr.ErrNotifier(msgNoTransport, nil)}
	}

	var errs []error
	logged := false
	for _, t := range c.transports {
		err := c.attempt(ctx, t, n.To, msg)
		if errors.Is(err, ErrNotDelivered) {
			metrics.RecordNotification(t.Name(), "logged")
			logged = true
			continue
		}
		if err == nil {
			metrics.RecordNotification(t.Name(), "sent")
			c.log.WithFields(logrus.Fields{
				"to":        n.To,
				"transport": t.Name(),
			}).Info("notification sent")
			return Result{Sent: true, Message: "Email enviado com sucesso via " + t.Name()}
		}

		metrics.RecordNotification(t.Name(), "failed")
		c.log.WithError(err).WithField("transport", t.Name()).Warn("notification attempt failed")
		errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
	}

	if len(errs) == 0 && logged {
		return Result{Sent: false, Message: msgNoTransport, Err: httperr.ErrNotifier(msgNoTransport, ErrNotDelivered)}
	}

	joined := errors.Join(errs...)
	c.log.WithError(joined).WithField("to", n.To).Error("notification not delivered")
	return Result{Sent: false, Message: msgSMTPFailed, Err: httperr.ErrNotifier(msgSMTPFailed, joined)}
}

func (c *Chain) attempt(ctx context.Context, t Transport, to string, msg Message) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return t.Send(ctx, to, msg)
}

var _ Notifier = (*Chain)(nil)
