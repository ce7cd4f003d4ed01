package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
	svc "github.com/RW482/vora/pkg/truck/service"
)

type TruckCtrl struct{ s svc.TruckService }

func New(s svc.TruckService) *TruckCtrl { return &TruckCtrl{s: s} }

func (h *TruckCtrl) List(c echo.Context) error {
	route := c.QueryParam("route")
	if route == "" {
		route = entities.RouteMumToKop
	}
	list, err := h.s.ListByRoute(route)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *TruckCtrl) Register(c echo.Context) error {
	var in svc.RegisterTruckInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	t, err := h.s.Register(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TruckCtrl) UpdateStatus(c echo.Context) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	t, err := h.s.UpdateStatus(c.Param("id"), in.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TruckCtrl) Manifest(c echo.Context) error {
	orders, err := h.s.Manifest(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, orders)
}
