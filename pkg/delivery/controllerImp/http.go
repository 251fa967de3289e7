package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"milkman/pkg/apperr"
	dsvc "milkman/pkg/delivery/service"
	"milkman/pkg/validate"
)

type DeliveryCtrl struct{ s dsvc.Service }

func New(s dsvc.Service) *DeliveryCtrl { return &DeliveryCtrl{s: s} }

func (h *DeliveryCtrl) Register(e *echo.Echo) {
	e.POST("/deliveries", h.Create)
	e.GET("/deliveries/:customerId", h.List)
}

type createReq struct {
	CustomerID *uint    `json:"customer_id" validate:"required,gt=0"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity   *float64 `json:"quantity" validate:"required,gte=0"`
}

func (h *DeliveryCtrl) Create(c echo.Context) error {
	var req createReq
	if err := validate.Bind(c, &req); err != nil {
		return err
	}
	out, err := h.s.Record(c.Request().Context(), *req.CustomerID, req.Date, *req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DeliveryCtrl) List(c echo.Context) error {
	id, err := parseUint(c.Param("customerId"))
	if err != nil || id == 0 {
		return apperr.Validation("invalid customer id %q", c.Param("customerId"))
	}
	list, err := h.s.ListByCustomer(c.Request().Context(), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
