// Package apierror provides the error envelope of every screen endpoint.
// Handlers turn internal errors into these bodies; nothing else produces
// user-facing error text.
package apierror

import (
	"errors"
	"net/http"

	"exploraneiva/internal/form"
	"exploraneiva/internal/infra"
	"exploraneiva/internal/listview"
	"exploraneiva/internal/session"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// DocumentFailed is returned when the invoice was stored but its PDF was
// not. Clients retry with PUT on InvoiceID instead of creating again.
type DocumentFailed struct {
	Detail    string `json:"detail"`
	InvoiceID int64  `json:"invoiceId"`
}

// FromError maps err to an HTTP status and envelope.
//
// Upstream 4xx answers keep their status so a 404 from the API is a 404
// here; any other gateway failure is a 502. Unknown errors are a 500 with
// a generic message.
func FromError(err error) (int, any) {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, NewValidation(verr.Fields)
	}
	var derr *form.DocumentError
	if errors.As(err, &derr) {
		return http.StatusInternalServerError, &DocumentFailed{Detail: derr.Error(), InvoiceID: derr.InvoiceID}
	}
	if ge, ok := infra.AsGatewayError(err); ok {
		if ge.Kind == infra.KindStatus && ge.StatusCode >= 400 && ge.StatusCode < 500 {
			return ge.StatusCode, New(ge.Message)
		}
		return http.StatusBadGateway, New(ge.Message)
	}

	switch {
	case errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized, New(err.Error())
	case errors.Is(err, form.ErrNotReady):
		return http.StatusConflict, New(err.Error())
	case errors.Is(err, listview.ErrDeleteNotConfirmed):
		return http.StatusBadRequest, New(err.Error())
	case errors.Is(err, listview.ErrClosed):
		return http.StatusGone, New(err.Error())
	}
	return http.StatusInternalServerError, New("Error interno del servidor")
}
