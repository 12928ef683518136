package infra

import (
	"errors"
	"net/http"
)

// GatewayErrorKind classifies why a call to the remote API failed.
type GatewayErrorKind string

const (
	KindTransport GatewayErrorKind = "transport" // no response (DNS, refused, reset, cancelled)
	KindTimeout   GatewayErrorKind = "timeout"   // client-wide timeout elapsed
	KindStatus    GatewayErrorKind = "status"    // non-2xx response
	KindDecode    GatewayErrorKind = "decode"    // 2xx with an unreadable body
)

// ConnectionErrorMessage is shown when nothing more specific is known.
const ConnectionErrorMessage = "Error de conexión con el servidor"

// GatewayError is the single error type produced by Gateway.
// Error() returns the display message; callers that need to branch use Kind
// and StatusCode instead of matching strings.
type GatewayError struct {
	Kind       GatewayErrorKind
	Message    string
	StatusCode int // 0 unless Kind == KindStatus
	URL        string
	Err        error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.Err }

// AsGatewayError unwraps err into a *GatewayError.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsNotFound reports whether the API answered 404.
func IsNotFound(err error) bool {
	ge, ok := AsGatewayError(err)
	return ok && ge.Kind == KindStatus && ge.StatusCode == http.StatusNotFound
}
