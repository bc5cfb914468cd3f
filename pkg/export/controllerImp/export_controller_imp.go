package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agricrm/pkg/export"
	frepo "agricrm/pkg/farmer/repository"
	purepo "agricrm/pkg/purchase/repository"
)

type ExportCtrl struct {
	farmers   frepo.FarmerRepository
	purchases purepo.PurchaseRepository
}

func New(farmers frepo.FarmerRepository, purchases purepo.PurchaseRepository) *ExportCtrl {
	return &ExportCtrl{farmers: farmers, purchases: purchases}
}

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ExportCtrl) Farmers(c echo.Context) error {
	farmers, err := h.farmers.List(frepo.FarmerFilter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := export.Farmers(farmers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	name := export.Filename("farmers", time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Response().Header().Set(echo.HeaderContentType, xlsxMime)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

func (h *ExportCtrl) Purchases(c echo.Context) error {
	purchases, err := h.purchases.List(purepo.PurchaseFilter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := export.Purchases(purchases)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	name := export.Filename("purchases", time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Response().Header().Set(echo.HeaderContentType, xlsxMime)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
