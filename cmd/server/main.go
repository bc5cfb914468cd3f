package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agricrm/config"
	"agricrm/database"
	"agricrm/pkg/logger"
	"agricrm/router"

	// Farmers
	farmerCtrlImp "agricrm/pkg/farmer/controllerImp"
	farmerRepoImp "agricrm/pkg/farmer/repositoryImp"

	// Leads
	leadCtrlImp "agricrm/pkg/lead/controllerImp"
	leadRepoImp "agricrm/pkg/lead/repositoryImp"
	leadSvcImp "agricrm/pkg/lead/serviceImp"

	// Products
	productCtrlImp "agricrm/pkg/product/controllerImp"
	productRepoImp "agricrm/pkg/product/repositoryImp"

	// Purchases
	purchaseCtrlImp "agricrm/pkg/purchase/controllerImp"
	purchaseRepoImp "agricrm/pkg/purchase/repositoryImp"

	// Pipeline board
	pipelineCtrlImp "agricrm/pkg/pipeline/controllerImp"

	// Dashboard / analytics
	analyticsCtrlImp "agricrm/pkg/metrics/controllerImp"
	dashSvcImp "agricrm/pkg/metrics/serviceImp"

	// Export + health + seed
	exportCtrlImp "agricrm/pkg/export/controllerImp"
	healthCtrlImp "agricrm/pkg/health/controllerImp"
	"agricrm/pkg/seed"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	if cfg.SeedDemo {
		if err := seed.Demo(db); err != nil {
			zlog.Warn("demo seed failed", "err", err)
		}
	}

	// 4) Repos
	fRepo := farmerRepoImp.New(db)
	lRepo := leadRepoImp.New(db)
	pRepo := productRepoImp.New(db)
	puRepo := purchaseRepoImp.New(db)

	// 5) Services
	lSvc := leadSvcImp.New(lRepo, fRepo)
	dashSvc := dashSvcImp.New(lRepo, fRepo, pRepo, puRepo)

	// 6) Controllers
	fCtrl := farmerCtrlImp.New(fRepo)
	lCtrl := leadCtrlImp.New(lRepo, lSvc)
	pCtrl := productCtrlImp.New(pRepo)
	puCtrl := purchaseCtrlImp.New(puRepo)
	boardCtrl := pipelineCtrlImp.New(lRepo, dashSvc, zlog)
	aCtrl := analyticsCtrlImp.New(dashSvc)
	eCtrl := exportCtrlImp.New(fRepo, puRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(e, zlog, fCtrl, lCtrl, pCtrl, puCtrl, boardCtrl, aCtrl, eCtrl, hCtrl)

	// 8) Start
	zlog.Info("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", "err", err)
	}
}
