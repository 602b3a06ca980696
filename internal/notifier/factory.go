package notifier

import (
	"github.com/sirupsen/logrus"

	"github.com/pauloryan091/agmais/internal/config"
)

// FromConfig builds the transport chain: STARTTLS then SSL when SMTP
// credentials exist, otherwise the log transport.
func FromConfig(cfg *config.Config, log logrus.FieldLogger) *Chain {
	log = log.WithField("component", "notifier")

	useSMTP := cfg.NotifyTransport == "smtp" ||
		(cfg.NotifyTransport == "auto" && cfg.SMTPEnabled())

	if !useSMTP {
		return NewChain(log, cfg.NotifyTimeout, NewLogTransport(log))
	}

	base := SMTPConfig{
		Host:     cfg.SMTPHost,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
		Timeout:  cfg.NotifyTimeout,
	}

	startTLS := base
	startTLS.Port = cfg.SMTPStartTLSPort

	ssl := base
	ssl.Port = cfg.SMTPSSLPort

	return NewChain(log, cfg.NotifyTimeout,
		NewSMTPTransport(startTLS, ModeStartTLS),
		NewSMTPTransport(ssl, ModeSSL),
	)
}
