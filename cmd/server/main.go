package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/RW482/vora/config"
	"github.com/RW482/vora/database"
	"github.com/RW482/vora/router"

	// Auth
	authCtrlImp "github.com/RW482/vora/pkg/auth/controllerImp"
	authSvcImp "github.com/RW482/vora/pkg/auth/serviceImp"

	// Orders
	orderCtrlImp "github.com/RW482/vora/pkg/order/controllerImp"
	orderRepoImp "github.com/RW482/vora/pkg/order/repositoryImp"
	orderSvcImp "github.com/RW482/vora/pkg/order/serviceImp"

	// Trucks
	truckCtrlImp "github.com/RW482/vora/pkg/truck/controllerImp"
	truckRepoImp "github.com/RW482/vora/pkg/truck/repositoryImp"
	truckSvcImp "github.com/RW482/vora/pkg/truck/serviceImp"

	// Branches / Users
	branchCtrlImp "github.com/RW482/vora/pkg/branch/controllerImp"
	branchRepoImp "github.com/RW482/vora/pkg/branch/repositoryImp"
	userCtrlImp "github.com/RW482/vora/pkg/user/controllerImp"
	userRepoImp "github.com/RW482/vora/pkg/user/repositoryImp"

	// Dashboard / Reports
	dashCtrlImp "github.com/RW482/vora/pkg/dashboard/controllerImp"
	dashSvcImp "github.com/RW482/vora/pkg/dashboard/serviceImp"
	reportCtrlImp "github.com/RW482/vora/pkg/report/controllerImp"

	// Sync / Snapshot / Settings
	settingRepoImp "github.com/RW482/vora/pkg/setting/repositoryImp"
	snapCtrlImp "github.com/RW482/vora/pkg/snapshot/controllerImp"
	snapSvcImp "github.com/RW482/vora/pkg/snapshot/serviceImp"
	"github.com/RW482/vora/pkg/sync"
	syncCtrlImp "github.com/RW482/vora/pkg/sync/controllerImp"

	// Health
	healthCtrlImp "github.com/RW482/vora/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + first-run seed
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.SeedDefaults(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// 3) Repos
	oRepo := orderRepoImp.New(db)
	tRepo := truckRepoImp.New(db)
	bRepo := branchRepoImp.New(db)
	uRepo := userRepoImp.New(db)
	sRepo := settingRepoImp.New(db)

	// 4) Sync orchestrator (snapshot service is its local store)
	snapSvc := snapSvcImp.New(db)
	remote := sync.NewRemote(cfg.SyncEndpoint)
	orch := sync.NewOrchestrator(remote, snapSvc, sRepo, cfg.PushDebounce, cfg.PullInterval)
	orch.SetToken(cfg.SyncToken)
	orch.Start()
	defer orch.Stop()

	// 5) Services + controllers
	oSvc := orderSvcImp.New(oRepo, orch)
	tSvc := truckSvcImp.New(tRepo, oRepo, orch)
	dSvc := dashSvcImp.New(oRepo, tRepo)
	aSvc := authSvcImp.New(uRepo, cfg.JWTSecret)

	oCtrl := orderCtrlImp.New(oSvc, uRepo)
	tCtrl := truckCtrlImp.New(tSvc)
	bCtrl := branchCtrlImp.New(bRepo, orch)
	uCtrl := userCtrlImp.New(uRepo, orch)
	dCtrl := dashCtrlImp.New(dSvc)
	aCtrl := authCtrlImp.New(aSvc, uRepo, orch)
	syCtrl := syncCtrlImp.New(orch)
	snCtrl := snapCtrlImp.New(snapSvc, orch)
	rCtrl := reportCtrlImp.New(oRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, orch)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	r := router.New(
		e,
		cfg.JWTSecret,
		aCtrl,
		oCtrl,
		tCtrl,
		bCtrl,
		uCtrl,
		dCtrl,
		syCtrl,
		snCtrl,
		rCtrl,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
