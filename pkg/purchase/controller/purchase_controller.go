package controller

import "github.com/labstack/echo/v4"

// Purchases have no update or direct delete route: the records are
// immutable and only leave via farmer/product cascade.
type PurchaseController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
}
