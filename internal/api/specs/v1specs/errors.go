package v1specs

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrRouteNotFound is passed to Handler.NewError for unknown paths.
var ErrRouteNotFound = errors.New("route not found")

// DecodeRequestError is returned when a request body cannot be decoded.
type DecodeRequestError struct {
	OperationName string
	Err           error
}

func (e *DecodeRequestError) Error() string {
	return fmt.Sprintf("operation %s: decode request: %s", e.OperationName, e.Err)
}

func (e *DecodeRequestError) Unwrap() error { return e.Err }

// DecodeParamsError is returned when path or query parameters are invalid.
type DecodeParamsError struct {
	OperationName string
	Name          string
	Err           error
}

func (e *DecodeParamsError) Error() string {
	return fmt.Sprintf("operation %s: decode params: %q: %s", e.OperationName, e.Name, e.Err)
}

func (e *DecodeParamsError) Unwrap() error { return e.Err }

// SecurityError is returned when the security handler rejects a request.
type SecurityError struct {
	OperationName string
	Security      string
	Err           error
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("operation %s: security %q: %s", e.OperationName, e.Security, e.Err)
}

func (e *SecurityError) Unwrap() error { return e.Err }
