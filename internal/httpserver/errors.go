package httpserver

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
)

func statusFor(code service.Code) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeBadRequest:
		return http.StatusBadRequest
	case service.CodeMethodNotSupported:
		return http.StatusMethodNotAllowed
	case service.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail logs a service error under event and turns it into the matching HTTP error.
func fail(l *slog.Logger, event string, err error) error {
	status := statusFor(service.CodeOf(err))
	if status >= http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", err.Error(), "error", err)
	} else {
		l.Warn(event, "status", status, "reason", err.Error(), "error", err)
	}
	return echo.NewHTTPError(status, err.Error())
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
