package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	esvc "milkman/pkg/export/service"
)

type ExportCtrl struct{ s esvc.Service }

func New(s esvc.Service) *ExportCtrl { return &ExportCtrl{s: s} }

func (h *ExportCtrl) Register(e *echo.Echo) {
	e.GET("/export/pdf/:month", h.download(esvc.FormatPDF))
	e.GET("/export/excel/:month", h.download(esvc.FormatExcel))
}

func (h *ExportCtrl) download(format string) echo.HandlerFunc {
	return func(c echo.Context) error {
		a, err := h.s.Export(c.Request().Context(), format, c.Param("month"))
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", a.FileName))
		return c.Blob(http.StatusOK, a.ContentType, a.Body)
	}
}
