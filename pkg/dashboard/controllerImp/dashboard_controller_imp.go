package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	svc "github.com/RW482/vora/pkg/dashboard/service"
)

type DashboardCtrl struct{ s svc.DashboardService }

func New(s svc.DashboardService) *DashboardCtrl { return &DashboardCtrl{s: s} }

func (h *DashboardCtrl) Stats(c echo.Context) error {
	st, err := h.s.Compute()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}
