package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/purchase/repository"
)

type PurchaseCtrl struct{ repo repository.PurchaseRepository }

func New(repo repository.PurchaseRepository) *PurchaseCtrl { return &PurchaseCtrl{repo} }

type createReq struct {
	FarmerID     uint   `json:"farmer_id"`
	ProductID    uint   `json:"product_id"`
	Quantity     *int   `json:"quantity"`
	PurchaseDate string `json:"purchase_date"` // YYYY-MM-DD, defaults to today
}

func (h *PurchaseCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.FarmerID == 0 || req.ProductID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "farmer_id and product_id are required"})
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity must be non-negative"})
	}
	date := time.Now()
	if req.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "purchase_date must be YYYY-MM-DD"})
		}
		date = d
	}
	p := &entities.Purchase{FarmerID: req.FarmerID, ProductID: req.ProductID, Quantity: req.Quantity, PurchaseDate: date}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PurchaseCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PurchaseCtrl) List(c echo.Context) error {
	var f repository.PurchaseFilter
	if v, _ := strconv.Atoi(c.QueryParam("farmer_id")); v > 0 {
		f.FarmerID = uint(v)
	}
	if v, _ := strconv.Atoi(c.QueryParam("product_id")); v > 0 {
		f.ProductID = uint(v)
	}
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = &t
		}
	}
	f.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	f.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	out, err := h.repo.List(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
