package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/database"
	"garden/router"
	"garden/web"

	dashCtrlImp "garden/pkg/dashboard/controllerImp"
	exportCtrlImp "garden/pkg/export/controllerImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
	plantCtrlImp "garden/pkg/plant/controllerImp"
	plantRepoImp "garden/pkg/plant/repositoryImp"
	plantSvcImp "garden/pkg/plant/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + migrations
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Renderer = web.NewRenderer()

	// 4) Repos/Services/Controllers
	pRepo := plantRepoImp.New(db)
	pSvc := plantSvcImp.New(pRepo)
	pCtrl := plantCtrlImp.New(pSvc)
	dCtrl := dashCtrlImp.New(pSvc)
	xCtrl := exportCtrlImp.New(pSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, dCtrl.Index, pCtrl, xCtrl, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
