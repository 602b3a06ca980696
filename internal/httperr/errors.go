package httperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindNotFound         Kind = "not_found"
	KindUnauthorized     Kind = "unauthorized"
	KindAuth             Kind = "auth"
	KindStoreUnavailable Kind = "store_unavailable"
	KindRateLimited      Kind = "rate_limited"
	KindNotifier         Kind = "notifier"
	KindInternal         Kind = "internal"
)

// Error is the single error type crossing layer boundaries. Code is a stable
// machine identifier, Message is shown to the user as is.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ErrValidation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func ErrUnauthorized(code string) error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: "Não autorizado"}
}

func ErrAuth(code, message string) error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

func ErrStoreUnavailable(err error) error {
	return &Error{
		Kind:    KindStoreUnavailable,
		Code:    "store_unavailable",
		Message: "Banco de dados não encontrado",
		Err:     err,
	}
}

func ErrRateLimited() error {
	return &Error{
		Kind:    KindRateLimited,
		Code:    "rate_limited",
		Message: "Muitas tentativas. Aguarde alguns instantes.",
	}
}

// ErrNotifier describes a failed delivery. It is carried in notifier
// results and audit metadata, never returned by a request.
func ErrNotifier(message string, err error) error {
	return &Error{Kind: KindNotifier, Code: "notification_failed", Message: message, Err: err}
}

func ErrInternal(code string, err error) error {
	return &Error{Kind: KindInternal, Code: code, Message: "Erro interno do servidor", Err: err}
}

// KindOf classifies err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized, KindAuth:
		return http.StatusUnauthorized
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindNotifier:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
