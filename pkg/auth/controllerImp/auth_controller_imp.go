package controllerImp

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	svc "github.com/RW482/vora/pkg/auth/service"
	userRepo "github.com/RW482/vora/pkg/user/repository"
)

// Puller is satisfied by the sync orchestrator; a fresh session starts by
// catching up with the shared document.
type Puller interface {
	PullNow(ctx context.Context) (bool, error)
}

type AuthCtrl struct {
	s      svc.AuthService
	users  userRepo.UserRepository
	puller Puller
}

func New(s svc.AuthService, users userRepo.UserRepository, puller Puller) *AuthCtrl {
	return &AuthCtrl{s: s, users: users, puller: puller}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	res, err := h.s.Login(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if h.puller != nil {
		go func() {
			if _, err := h.puller.PullNow(context.Background()); err != nil {
				log.Printf("[sync] login pull: %v", err)
			}
		}()
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	u, err := h.users.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	out := *u
	out.Password = ""
	return c.JSON(http.StatusOK, echo.Map{
		"user":         out,
		"capabilities": svc.Capabilities(u.Role),
	})
}
