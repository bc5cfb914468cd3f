package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agricrm/pkg/lead/repository"
	"agricrm/pkg/lead/service"
	"agricrm/pkg/lead/serviceImp"
)

type LeadCtrl struct {
	repo repository.LeadRepository
	svc  service.LeadService
}

func New(repo repository.LeadRepository, svc service.LeadService) *LeadCtrl {
	return &LeadCtrl{repo: repo, svc: svc}
}

func (h *LeadCtrl) Create(c echo.Context) error {
	var req service.NewLead
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.CreateLead(req)
	if err != nil {
		if errors.Is(err, serviceImp.ErrMissingFarmer) || errors.Is(err, serviceImp.ErrBadStatus) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LeadCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LeadCtrl) List(c echo.Context) error {
	f := repository.LeadFilter{
		Status: c.QueryParam("status"),
		Source: c.QueryParam("source"),
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
	Status *string `json:"status"`
	Source *string `json:"source"`
	Notes  *string `json:"notes"`
}

func (h *LeadCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := h.repo.FindByID(uint(id))
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
	if p.Status != nil {
		if _, err := h.svc.UpdateStatus(l.LeadID, *p.Status); err != nil {
			if errors.Is(err, serviceImp.ErrBadStatus) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		l.Status = *p.Status
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.Source != nil || p.Notes != nil {
		if err := h.repo.Update(l); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, l)
}

// PatchStatus is the status-edit dialog: any of the seven stages is legal
// from any other.
func (h *LeadCtrl) PatchStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.UpdateStatus(uint(id), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrBadStatus):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LeadCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
