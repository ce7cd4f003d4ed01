package router

import (
	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	orderCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		AdvanceStatus(echo.Context) error
		MarkPaid(echo.Context) error
		Delete(echo.Context) error
	},
	truckCtrl interface {
		List(echo.Context) error
		Register(echo.Context) error
		UpdateStatus(echo.Context) error
		Manifest(echo.Context) error
	},
	branchCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	userCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		UpdatePreferences(echo.Context) error
	},
	dashCtrl interface{ Stats(echo.Context) error },
	syncCtrl interface {
		Status(echo.Context) error
		Link(echo.Context) error
		Push(echo.Context) error
		Pull(echo.Context) error
	},
	snapCtrl interface {
		Export(echo.Context) error
		Import(echo.Context) error
	},
	reportCtrl interface{ Manifest(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/auth/login", authCtrl.Login)

	api := e.Group("", middleware.JWT(jwtSecret))
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/orders", orderCtrl.List)
	api.POST("/orders", orderCtrl.Create, middleware.StaffOrAdmin())
	api.POST("/orders/:id/advance", orderCtrl.AdvanceStatus, middleware.StaffOrAdmin())
	api.POST("/orders/:id/paid", orderCtrl.MarkPaid, middleware.StaffOrAdmin())
	api.DELETE("/orders/:id", orderCtrl.Delete, middleware.StaffOrAdmin())

	api.GET("/trucks", truckCtrl.List)
	api.POST("/trucks", truckCtrl.Register, middleware.StaffOrAdmin())
	api.PATCH("/trucks/:id/status", truckCtrl.UpdateStatus, middleware.StaffOrAdmin())
	api.GET("/trucks/:id/manifest", truckCtrl.Manifest)

	api.GET("/branches", branchCtrl.List)
	api.POST("/branches", branchCtrl.Create, middleware.StaffOrAdmin())

	api.GET("/dashboard", dashCtrl.Stats)
	api.GET("/reports/manifest.xlsx", reportCtrl.Manifest)

	admin := api.Group("", middleware.AdminOnly())
	admin.GET("/users", userCtrl.List)
	admin.POST("/users", userCtrl.Create)
	admin.DELETE("/users/:id", userCtrl.Delete)
	api.PATCH("/users/:id/preferences", userCtrl.UpdatePreferences)

	api.GET("/sync/status", syncCtrl.Status)
	admin.POST("/sync/link", syncCtrl.Link)
	api.POST("/sync/push", syncCtrl.Push)
	api.POST("/sync/pull", syncCtrl.Pull)

	api.GET("/snapshot/export", snapCtrl.Export)
	admin.POST("/snapshot/import", snapCtrl.Import)

	return e
}
