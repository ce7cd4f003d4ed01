package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	svc "github.com/RW482/vora/pkg/snapshot/service"
	"github.com/RW482/vora/pkg/sync"
)

type Notifier interface {
	NotifyMutation()
}

type SnapshotCtrl struct {
	s svc.SnapshotService
	n Notifier
}

func New(s svc.SnapshotService, n Notifier) *SnapshotCtrl {
	return &SnapshotCtrl{s: s, n: n}
}

// Export streams the blob as a downloadable JSON backup.
func (h *SnapshotCtrl) Export(c echo.Context) error {
	snap, err := h.s.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	name := fmt.Sprintf("vora_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.JSON(http.StatusOK, snap)
}

// Import replaces local state with an uploaded blob. Validation is the same
// users-field heuristic the sync pull applies; anything beyond that is
// accepted as-is.
func (h *SnapshotCtrl) Import(c echo.Context) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	snap, err := sync.DecodeSnapshot(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "not a valid backup: missing users"})
	}
	if err := h.s.Replace(snap); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.n != nil {
		h.n.NotifyMutation()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"users":    len(snap.Users),
		"branches": len(snap.Branches),
		"trucks":   len(snap.Trucks),
		"orders":   len(snap.Orders),
	})
}
