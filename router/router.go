package router

import (
	"github.com/labstack/echo/v4"

	exportCtrl "agricrm/pkg/export/controllerImp"
	farmerCtrl "agricrm/pkg/farmer/controller"
	leadCtrl "agricrm/pkg/lead/controller"
	"agricrm/pkg/logger"
	analyticsCtrl "agricrm/pkg/metrics/controller"
	"agricrm/pkg/middleware"
	pipelineCtrl "agricrm/pkg/pipeline/controller"
	productCtrl "agricrm/pkg/product/controller"
)

func New(
	e *echo.Echo,
	log *logger.Logger,
	farmers farmerCtrl.FarmerController,
	leads leadCtrl.LeadController,
	products productCtrl.ProductController,
	purchases interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	board pipelineCtrl.PipelineController,
	analytics analyticsCtrl.AnalyticsController,
	exports *exportCtrl.ExportCtrl,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.RequestLog(log))

	e.GET("/health", healthCtrl.Health)

	e.GET("/farmers", farmers.List)
	e.POST("/farmers", farmers.Create)
	e.GET("/farmers/:id", farmers.Get)
	e.PUT("/farmers/:id", farmers.Update)
	e.DELETE("/farmers/:id", farmers.Delete)

	e.GET("/leads", leads.List)
	e.POST("/leads", leads.Create)
	e.GET("/leads/:id", leads.Get)
	e.PUT("/leads/:id", leads.Update)
	e.PATCH("/leads/:id/status", leads.PatchStatus)
	e.DELETE("/leads/:id", leads.Delete)

	e.GET("/products", products.List)
	e.POST("/products", products.Create)
	e.GET("/products/:id", products.Get)
	e.PUT("/products/:id", products.Update)
	e.DELETE("/products/:id", products.Delete)

	// purchases are immutable: no update or delete routes
	e.GET("/purchases", purchases.List)
	e.POST("/purchases", purchases.Create)
	e.GET("/purchases/:id", purchases.Get)

	e.GET("/pipeline", board.Board)
	e.PATCH("/pipeline/leads/:id", board.Move)
	e.POST("/pipeline/leads/:id/advance", board.Advance)
	e.GET("/pipeline/stats", board.Stats)

	e.GET("/dashboard/metrics", analytics.Overview)
	e.GET("/dashboard/activity", analytics.RecentActivity)

	e.GET("/analytics/territories", analytics.Territories)
	e.GET("/analytics/categories", analytics.Categories)
	e.GET("/analytics/sources", analytics.Sources)
	e.GET("/analytics/sales", analytics.Sales)
	e.GET("/analytics/funnel", analytics.Funnel)

	e.GET("/stats/farmers", analytics.FarmerStats)
	e.GET("/stats/products", analytics.ProductStats)
	e.GET("/stats/leads", analytics.LeadStats)

	e.GET("/export/farmers", exports.Farmers)
	e.GET("/export/purchases", exports.Purchases)

	return e
}
