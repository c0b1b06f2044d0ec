package http

import (
	"errors"
	"net/http"

	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/ports"
	"mota/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errSessionRequired = errors.New("a valid session is required")

// statusFor maps application errors to HTTP status codes. Backend failures
// are checked before validation errors because an invalid backend record is
// a gateway problem, not a client one.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errSessionRequired):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrTransitionNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrOrderStateChanged):
		return http.StatusConflict
	case errors.Is(err, ports.ErrBackendTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ports.ErrBackendUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, queries.ErrBoardIsNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(code int, err error) string {
	switch code {
	case http.StatusConflict:
		return ports.ErrOrderStateChanged.Error()
	case http.StatusInternalServerError:
		return http.StatusText(code)
	default:
		return err.Error()
	}
}

// NewErrorHandler renders every error as an Error body. Echo's own errors
// (unknown route, bad binding) keep their status code.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var message string
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			code = statusFor(err)
			message = messageFor(code, err)
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Warn("write error response", zap.Error(writeErr))
		}
	}
}
