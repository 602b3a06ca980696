package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// ErrNotDelivered is returned by transports that only record the message.
var ErrNotDelivered = errors.New("message logged, not delivered")

type Transport interface {
	Name() string
	Send(ctx context.Context, to string, msg Message) error
}

// ======================================================
// SMTP
// ======================================================

type SMTPMode int

const (
	// STARTTLS upgrade on a plain connection, usually port 587.
	ModeStartTLS SMTPMode = iota
	// implicit TLS from the first byte, usually port 465.
	ModeSSL
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

type SMTPTransport struct {
	cfg  SMTPConfig
	mode SMTPMode
}

func NewSMTPTransport(cfg SMTPConfig, mode SMTPMode) *SMTPTransport {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPTransport{cfg: cfg, mode: mode}
}

func (t *SMTPTransport) Name() string {
	if t.mode == ModeSSL {
		return fmt.Sprintf("ssl:%d", t.cfg.Port)
	}
	return fmt.Sprintf("starttls:%d", t.cfg.Port)
}

func (t *SMTPTransport) message(to string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(t.cfg.FromName, t.cfg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}

func (t *SMTPTransport) Send(ctx context.Context, to string, msg Message) error {
	m, err := t.message(to, msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.Username),
		mail.WithPassword(t.cfg.Password),
	}
	if t.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(t.cfg.Timeout))
	}
	if t.mode == ModeSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send via %s: %w", t.Name(), err)
	}
	return nil
}

// ======================================================
// LOG (development)
// ======================================================

// LogTransport writes the message to the log instead of delivering it.
// Send always reports ErrNotDelivered.
type LogTransport struct {
	log logrus.FieldLogger
}

func NewLogTransport(log logrus.FieldLogger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Name() string {
	return "log"
}

func (t *LogTransport) Send(_ context.Context, to string, msg Message) error {
	t.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": msg.Subject,
	}).Info("email not sent, log transport active")
	t.log.Debug(msg.Text)
	return ErrNotDelivered
}
