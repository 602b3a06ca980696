package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/config"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/logging"
)

type fakeTransport struct {
	name  string
	err   error
	calls int
	last  Message
}

func (f *fakeTransport) Name() string { return f.name }

func (f *fakeTransport) Send(ctx context.Context, to string, msg Message) error {
	f.calls++
	f.last = msg
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return f.err
}

func bob(status string) Notification {
	return Notification{
		To:          "bob@x.com",
		ClientName:  "Bob",
		ServiceName: "Haircut",
		Date:        "2025-01-10",
		Time:        "10:00",
		Status:      status,
	}
}

func TestComposePending(t *testing.T) {
	msg, err := Compose(bob("pending"))
	require.NoError(t, err)

	assert.Equal(t, "Confirmação de Agendamento - Haircut", msg.Subject)
	assert.Contains(t, msg.Text, "Olá Bob")
	assert.Contains(t, msg.Text, "Data: 10/01/2025")
	assert.Contains(t, msg.Text, "PENDENTE")
	assert.Contains(t, msg.HTML, "#ffc107")
	assert.Contains(t, msg.HTML, "@agendamentomais")
}

func TestComposeOtherStatuses(t *testing.T) {
	cases := map[string]string{
		"confirmed": "#17a2b8",
		"done":      "#28a745",
		"canceled":  "#dc3545",
		"unknown":   "#6c757d",
	}
	for status, color := range cases {
		msg, err := Compose(bob(status))
		require.NoError(t, err)
		assert.Equal(t, "Atualização do Agendamento - Haircut", msg.Subject, status)
		assert.Contains(t, msg.HTML, color, status)
	}
}

func TestComposeEscapesHTML(t *testing.T) {
	n := bob("confirmed")
	n.ClientName = "<script>x</script>"

	msg, err := Compose(n)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
}

func TestComposeKeepsUnparseableDate(t *testing.T) {
	n := bob("pending")
	n.Date = "amanhã"

	msg, err := Compose(n)
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Data: amanhã")
}

func TestChainShortCircuitsBadAddress(t *testing.T) {
	primary := &fakeTransport{name: "primary"}
	chain := NewChain(logging.Discard(), time.Second, primary)

	n := bob("pending")
	n.To = ""
	res := chain.Notify(context.Background(), n)
	assert.False(t, res.Sent)
	assert.Equal(t, "Cliente sem email", res.Message)

	n.To = "bob-at-x"
	res = chain.Notify(context.Background(), n)
	assert.False(t, res.Sent)
	assert.Equal(t, "Email inválido", res.Message)

	assert.Zero(t, primary.calls)
}

func TestChainFallsBack(t *testing.T) {
	primary := &fakeTransport{name: "starttls:587", err: errors.New("auth failed")}
	fallback := &fakeTransport{name: "ssl:465"}
	chain := NewChain(logging.Discard(), time.Second, primary, fallback)

	res := chain.Notify(context.Background(), bob("confirmed"))

	assert.True(t, res.Sent)
	assert.Contains(t, res.Message, "ssl:465")
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, "Atualização do Agendamento - Haircut", fallback.last.Subject)
}

func TestChainStopsAtFirstSuccess(t *testing.T) {
	primary := &fakeTransport{name: "a"}
	fallback := &fakeTransport{name: "b"}
	chain := NewChain(logging.Discard(), time.Second, primary, fallback)

	res := chain.Notify(context.Background(), bob("pending"))
	assert.True(t, res.Sent)
	assert.Zero(t, fallback.calls)
}

func TestChainAggregateFailure(t *testing.T) {
	chain := NewChain(logging.Discard(), time.Second,
		&fakeTransport{name: "a", err: errors.New("x")},
		&fakeTransport{name: "b", err: errors.New("y")},
	)

	res := chain.Notify(context.Background(), bob("pending"))
	assert.False(t, res.Sent)
	assert.NotEmpty(t, res.Message)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	chain := FromConfig(cfg, logging.Discard())
	require.Len(t, chain.transports, 1)
	assert.Equal(t, "log", chain.transports[0].Name())

	cfg.SMTPUser = "agenda@example.com"
	cfg.SMTPPassword = "app-password"
	chain = FromConfig(cfg, logging.Discard())
	require.Len(t, chain.transports, 2)
	assert.Equal(t, "starttls:587", chain.transports[0].Name())
	assert.Equal(t, "ssl:465", chain.transports[1].Name())
}

func TestLogTransportIsNotDelivery(t *testing.T) {
	chain := NewChain(logging.Discard(), time.Second, NewLogTransport(logging.Discard()))
	res := chain.Notify(context.Background(), bob("done"))
	assert.False(t, res.Sent)
	assert.Equal(t, "Nenhum transporte de email configurado", res.Message)
	assert.True(t, httperr.Is(res.Err, httperr.KindNotifier))
	assert.ErrorIs(t, res.Err, ErrNotDelivered)
}

func TestDefaultConfigDoesNotReportSent(t *testing.T) {
	chain := FromConfig(config.Default(), logging.Discard())
	res := chain.Notify(context.Background(), bob("pending"))
	assert.False(t, res.Sent)
}

func TestLogTransportDoesNotMaskSMTPFailure(t *testing.T) {
	smtp := &fakeTransport{name: "starttls:587", err: errors.New("auth failed")}
	chain := NewChain(logging.Discard(), time.Second, smtp, NewLogTransport(logging.Discard()))

	res := chain.Notify(context.Background(), bob("done"))
	assert.False(t, res.Sent)
	assert.Equal(t, 1, smtp.calls)
	assert.Contains(t, res.Message, "credenciais SMTP")
	assert.True(t, httperr.HasCode(res.Err, "notification_failed"))
	assert.ErrorContains(t, res.Err, "auth failed")
}
