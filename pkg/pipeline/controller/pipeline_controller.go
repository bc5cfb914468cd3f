package controller

import "github.com/labstack/echo/v4"

type PipelineController interface {
	Board(c echo.Context) error
	Move(c echo.Context) error
	Advance(c echo.Context) error
	Stats(c echo.Context) error
}
