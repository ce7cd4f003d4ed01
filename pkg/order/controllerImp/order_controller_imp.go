package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
	svc "github.com/RW482/vora/pkg/order/service"
	userRepo "github.com/RW482/vora/pkg/user/repository"
)

type OrderCtrl struct {
	s     svc.OrderService
	users userRepo.UserRepository
}

func New(s svc.OrderService, users userRepo.UserRepository) *OrderCtrl {
	return &OrderCtrl{s: s, users: users}
}

func (h *OrderCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	viewer, err := h.users.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}

	f := svc.Filter{
		Route:    c.QueryParam("route"),
		Date:     c.QueryParam("date"),
		BranchID: c.QueryParam("branch_id"),
		Search:   c.QueryParam("q"),
	}
	if f.Route == "" {
		f.Route = entities.RouteMumToKop
	}
	if f.Date == "" {
		f.Date = time.Now().Format("2006-01-02")
	}

	list, err := h.s.Visible(viewer, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *OrderCtrl) Create(c echo.Context) error {
	var in svc.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	o, err := h.s.Create(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderCtrl) AdvanceStatus(c echo.Context) error {
	o, err := h.s.AdvanceStatus(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) MarkPaid(c echo.Context) error {
	o, err := h.s.MarkPaid(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
