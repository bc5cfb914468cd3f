package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/farmer/repository"
)

type FarmerCtrl struct{ repo repository.FarmerRepository }

func New(repo repository.FarmerRepository) *FarmerCtrl { return &FarmerCtrl{repo} }

type createReq struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Village  string   `json:"village"`
	District string   `json:"district"`
	CropType string   `json:"crop_type"`
	Acreage  *float64 `json:"acreage"`
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	// name and phone are the registration form's required fields
	if req.Name == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and phone are required"})
	}
	f := &entities.Farmer{Name: req.Name, Phone: req.Phone, Village: req.Village, District: req.District, CropType: req.CropType, Acreage: req.Acreage}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) List(c echo.Context) error {
	f := repository.FarmerFilter{
		District: c.QueryParam("district"),
		CropType: c.QueryParam("crop_type"),
		Search:   c.QueryParam("q"),
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

type patchReq struct {
	Name     *string  `json:"name"`
	Phone    *string  `json:"phone"`
	Village  *string  `json:"village"`
	District *string  `json:"district"`
	CropType *string  `json:"crop_type"`
	Acreage  *float64 `json:"acreage"`
}

func (h *FarmerCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var p patchReq
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
	if p.Village != nil {
		f.Village = *p.Village
	}
	if p.District != nil {
		f.District = *p.District
	}
	if p.CropType != nil {
		f.CropType = *p.CropType
	}
	if p.Acreage != nil {
		f.Acreage = p.Acreage
	}
	if err := h.repo.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

// Delete removes the farmer; the store cascades to their leads and
// purchases.
func (h *FarmerCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
