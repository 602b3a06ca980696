package notifier

import (
	"context"
	"strings"
)

// Notification describes one appointment event for a client.
type Notification struct {
	To          string
	ClientName  string
	ServiceName string
	Date        string
	Time        string
	Status      string
}

// Result is advisory: callers report it but never fail because of it.
type Result struct {
	Sent    bool
	Message string
	// Err is a httperr notifier error when delivery was attempted and failed.
	Err error
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) Result
}

// checkAddress rejects obviously unusable addresses before any delivery.
func checkAddress(to string) (string, bool) {
	addr := strings.TrimSpace(to)
	if addr == "" {
		return "Cliente sem email", false
	}
	if !strings.Contains(addr, "@") || !strings.Contains(addr, ".") {
		return "Email inválido", false
	}
	return "", true
}
