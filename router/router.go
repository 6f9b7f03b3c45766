package router

import (
	"github.com/labstack/echo/v4"

	"garden/pkg/plant/controller"
)

func New(
	e *echo.Echo,
	dashboard func(echo.Context) error,
	plantCtrl controller.PlantController,
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", dashboard)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.POST("/plants", plantCtrl.Create)
	api.GET("/plants/export", exportCtrl.Export)
	api.GET("/plants/:id", plantCtrl.Get)
	api.PUT("/plants/:id", plantCtrl.Update)
	api.POST("/plants/:id/water", plantCtrl.Water)
	api.DELETE("/plants/:id", plantCtrl.Delete)
	return e
}
