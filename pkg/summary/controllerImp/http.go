package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ssvc "milkman/pkg/summary/service"
)

type SummaryCtrl struct{ s ssvc.Service }

func New(s ssvc.Service) *SummaryCtrl { return &SummaryCtrl{s: s} }

func (h *SummaryCtrl) Register(e *echo.Echo) {
	e.GET("/summary/:month", h.Monthly)
}

func (h *SummaryCtrl) Monthly(c echo.Context) error {
	rows, err := h.s.Monthly(c.Request().Context(), c.Param("month"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
