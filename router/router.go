package router

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"milkman/pkg/middleware"
	"milkman/pkg/validate"
)

const banner = "Milkman App API is running!"

type registrar interface{ Register(e *echo.Echo) }

// New installs the shared middleware and error handling on e and lets each
// controller register its routes. When staticDir exists it is served at /.
func New(e *echo.Echo, log *slog.Logger, staticDir string, controllers ...registrar) *echo.Echo {
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLog(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	for _, c := range controllers {
		c.Register(e)
	}

	if fi, err := os.Stat(staticDir); staticDir != "" && err == nil && fi.IsDir() {
		e.Static("/", staticDir)
	} else {
		e.GET("/", func(c echo.Context) error {
			return c.String(http.StatusOK, banner)
		})
	}
	return e
}
