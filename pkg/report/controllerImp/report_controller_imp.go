package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
	orderRepo "github.com/RW482/vora/pkg/order/repository"
	"github.com/RW482/vora/pkg/report"
)

type ReportCtrl struct{ orders orderRepo.OrderRepository }

func New(orders orderRepo.OrderRepository) *ReportCtrl { return &ReportCtrl{orders: orders} }

func (h *ReportCtrl) Manifest(c echo.Context) error {
	route := c.QueryParam("route")
	if route == "" {
		route = entities.RouteMumToKop
	}
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	orders, err := h.orders.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	buf, err := report.BuildManifestXLSX(route, date, orders)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	name := fmt.Sprintf("manifest_%s_%s.xlsx", route, date)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
