package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	Create(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Water(echo.Context) error
	Delete(echo.Context) error
}
