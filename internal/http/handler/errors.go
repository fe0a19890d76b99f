package handler

import (
	"errors"
	"net/http"

	"conduit/internal/core"
)

// statusFor is the single place an error kind becomes an HTTP status.
func statusFor(kind core.Kind) int {
	switch kind {
	case core.KindClientInput:
		return http.StatusBadRequest
	case core.KindNotFound:
		return http.StatusUnauthorized
	case core.KindStorage, core.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicError is the error text a client may see. Storage and internal
// details stay in the logs.
func publicError(err error) string {
	switch core.KindOf(err) {
	case core.KindClientInput, core.KindNotFound:
		return err.Error()
	}
	if errors.Is(err, core.ErrEmailTaken) {
		return core.ErrEmailTaken.Error()
	}
	return unexpectedErr
}
