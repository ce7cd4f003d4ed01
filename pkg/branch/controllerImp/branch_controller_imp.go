package controllerImp

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/branch/repository"
)

type Notifier interface {
	NotifyMutation()
}

// Branches have no update or delete: once created they are referenced by
// orders and stay for good.
type BranchCtrl struct {
	repo repository.BranchRepository
	n    Notifier
}

func New(repo repository.BranchRepository, n Notifier) *BranchCtrl {
	return &BranchCtrl{repo: repo, n: n}
}

type createReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (h *BranchCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	b := &entities.Branch{ID: uuid.NewString(), Name: req.Name, Location: req.Location}
	if err := h.repo.Create(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.n != nil {
		h.n.NotifyMutation()
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BranchCtrl) List(c echo.Context) error {
	list, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}
