package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"milkman/pkg/logger"
)

// RequestLog writes one structured line per request. 4xx are logged at
// warn and 5xx at error.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	log = logger.WithComponent(log, logger.ComponentHTTP)
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= 500:
				level = slog.LevelError
			case v.Status >= 400:
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				slog.String(logger.FieldMethod, v.Method),
				slog.String(logger.FieldPath, v.URI),
				slog.Int(logger.FieldStatusCode, v.Status),
				slog.Int64(logger.FieldDuration, v.Latency.Milliseconds()),
				slog.String(logger.FieldClientIP, v.RemoteIP),
				slog.String(logger.FieldRequestID, v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String(logger.FieldError, v.Error.Error()))
			}
			log.LogAttrs(context.Background(), level, "HTTP request completed", attrs...)
			return nil
		},
	})
}
