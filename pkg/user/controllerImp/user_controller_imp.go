package controllerImp

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/user/repository"
)

type Notifier interface {
	NotifyMutation()
}

type UserCtrl struct {
	repo repository.UserRepository
	n    Notifier
}

func New(repo repository.UserRepository, n Notifier) *UserCtrl {
	return &UserCtrl{repo: repo, n: n}
}

type createReq struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	FullName        string `json:"full_name"`
	LinkedVehicleNo string `json:"linked_vehicle_no"`
}

func (h *UserCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	switch req.Role {
	case entities.RoleAdmin, entities.RoleStaff, entities.RoleDriver:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}
	if req.Role == entities.RoleDriver && strings.TrimSpace(req.LinkedVehicleNo) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "driver needs a linked vehicle"})
	}
	if _, err := h.repo.FindByUsername(req.Username); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
	}

	u := &entities.User{
		ID:              uuid.NewString(),
		Username:        req.Username,
		Password:        req.Password,
		Role:            req.Role,
		FullName:        req.FullName,
		LinkedVehicleNo: entities.NormalizeVehicleNo(req.LinkedVehicleNo),
	}
	if err := h.repo.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.n != nil {
		h.n.NotifyMutation()
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserCtrl) List(c echo.Context) error {
	list, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *UserCtrl) Delete(c echo.Context) error {
	u, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if strings.EqualFold(u.Username, "admin") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "the seeded admin cannot be removed"})
	}
	if err := h.repo.Delete(u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.n != nil {
		h.n.NotifyMutation()
	}
	return c.NoContent(http.StatusNoContent)
}

type prefsReq struct {
	ThemePreference    *string `json:"theme_preference"`
	LanguagePreference *string `json:"language_preference"`
}

// UpdatePreferences patches a user's theme/language; users may only change
// their own.
func (h *UserCtrl) UpdatePreferences(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	id := c.Param("id")
	if id != uid && role != entities.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your preferences"})
	}
	u, err := h.repo.FindByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	var req prefsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.ThemePreference != nil {
		if *req.ThemePreference != "dark" && *req.ThemePreference != "light" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "theme must be dark or light"})
		}
		u.ThemePreference = *req.ThemePreference
	}
	if req.LanguagePreference != nil {
		if *req.LanguagePreference != "en" && *req.LanguagePreference != "mr" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "language must be en or mr"})
		}
		u.LanguagePreference = *req.LanguagePreference
	}
	if err := h.repo.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.n != nil {
		h.n.NotifyMutation()
	}
	return c.JSON(http.StatusOK, u)
}
