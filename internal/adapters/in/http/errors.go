package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"transport/internal/core/domain/services"
	"transport/internal/pkg/errs"
)

// respondError maps domain and application errors onto HTTP status codes and
// writes the uniform error body. The order matters: not-found and conflict
// are checked before the generic validation sentinels because wrapped errors
// may match several branches.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsUnprocessed):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUpstreamFailure):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, services.ErrCarrierUnavailable),
		errors.Is(err, services.ErrCarrierTypeMismatch):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
