package controller

import "github.com/labstack/echo/v4"

type AnalyticsController interface {
	Overview(c echo.Context) error
	Territories(c echo.Context) error
	Categories(c echo.Context) error
	Sources(c echo.Context) error
	Sales(c echo.Context) error
	Funnel(c echo.Context) error
	RecentActivity(c echo.Context) error
	FarmerStats(c echo.Context) error
	ProductStats(c echo.Context) error
	LeadStats(c echo.Context) error
}
