package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/pkg/sync"
)

type SyncCtrl struct{ o *sync.Orchestrator }

func New(o *sync.Orchestrator) *SyncCtrl { return &SyncCtrl{o: o} }

func (h *SyncCtrl) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.o.Status())
}

type linkReq struct {
	Token string `json:"token"`
}

// Link creates a fresh bin seeded from local state, or adopts a token from
// another device and pulls its document.
func (h *SyncCtrl) Link(c echo.Context) error {
	var req linkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	token, err := h.o.Link(c.Request().Context(), req.Token)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *SyncCtrl) Push(c echo.Context) error {
	if err := h.o.PushNow(c.Request().Context()); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.o.Status())
}

func (h *SyncCtrl) Pull(c echo.Context) error {
	replaced, err := h.o.PullNow(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"replaced": replaced})
}
