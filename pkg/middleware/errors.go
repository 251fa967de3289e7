package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"milkman/pkg/apperr"
	"milkman/pkg/logger"
)

// ErrorHandler renders every handler error as {"error": ..., "kind": ...}
// with the status that matches its apperr kind.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	log = logger.WithComponent(log, logger.ComponentHTTP)
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, kind, msg := classify(err)
		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				logger.FieldPath, c.Request().URL.Path,
				logger.FieldErrorKind, string(kind),
				logger.FieldError, err.Error())
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{"error": msg, "kind": kind})
		}
		if werr != nil {
			log.Error("write error response", logger.FieldError, werr.Error())
		}
	}
}

func classify(err error) (int, apperr.Kind, string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return apperr.StatusCode(ae.Kind), ae.Kind, apperr.Message(err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprint(he.Message)
		switch {
		case he.Code == http.StatusNotFound:
			return he.Code, apperr.KindNotFound, msg
		case he.Code < http.StatusInternalServerError:
			return he.Code, apperr.KindValidation, msg
		default:
			return he.Code, apperr.KindInternal, msg
		}
	}

	return http.StatusInternalServerError, apperr.KindInternal, "internal error"
}
