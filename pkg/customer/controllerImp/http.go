package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	svc "milkman/pkg/customer/service"
	"milkman/pkg/validate"
)

type CustomerCtrl struct{ s svc.Service }

func New(s svc.Service) *CustomerCtrl { return &CustomerCtrl{s: s} }

func (h *CustomerCtrl) Register(e *echo.Echo) {
	e.POST("/customers", h.Create)
	e.GET("/customers", h.List)
	e.POST("/customers/delete", h.DeleteMany)
}

type createReq struct {
	Name       string   `json:"name" validate:"required"`
	PricePerKg *float64 `json:"price_per_kg" validate:"required,gt=0"`
}

type deleteReq struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}

func (h *CustomerCtrl) Create(c echo.Context) error {
	var req createReq
	if err := validate.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Add(c.Request().Context(), req.Name, *req.PricePerKg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CustomerCtrl) DeleteMany(c echo.Context) error {
	var req deleteReq
	if err := validate.Bind(c, &req); err != nil {
		return err
	}
	n, err := h.s.DeleteMany(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}
