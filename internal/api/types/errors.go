package types

import (
	"net/http"

	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

// StatusFor maps an application error to an HTTP status. Only rejected input
// is the caller's fault; everything else is a server failure.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case appErr.IsCode(err, appErr.CodeInvalid):
		return http.StatusBadRequest
	case appErr.IsCode(err, appErr.CodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
