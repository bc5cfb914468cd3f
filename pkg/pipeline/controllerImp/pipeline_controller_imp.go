package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agricrm/entities"
	repo "agricrm/pkg/lead/repository"
	"agricrm/pkg/logger"
	msvc "agricrm/pkg/metrics/service"
	"agricrm/pkg/pipeline"
)

// PipelineCtrl owns the board state between requests. Loading the board
// rebuilds it from the store (the store is the source of truth; the board
// is only an optimistic mirror), a move mutates it in place.
type PipelineCtrl struct {
	mu    sync.Mutex
	board *pipeline.Board

	repo repo.LeadRepository
	dash msvc.DashboardService
	log  *logger.Logger
}

func New(r repo.LeadRepository, dash msvc.DashboardService, log *logger.Logger) *PipelineCtrl {
	return &PipelineCtrl{repo: r, dash: dash, log: log.With("ctrl", "pipeline")}
}

type boardCard struct {
	entities.Lead
	AgeDays int  `json:"age_days"`
	Urgent  bool `json:"urgent"`
}

type boardColumn struct {
	Stage pipeline.Stage `json:"stage"`
	Count int            `json:"count"`
	Leads []boardCard    `json:"leads"`
}

func (h *PipelineCtrl) reload() (*pipeline.Board, error) {
	leads, err := h.repo.List(repo.LeadFilter{})
	if err != nil {
		return nil, err
	}
	b := pipeline.NewBoard(leads, h.repo)
	h.mu.Lock()
	h.board = b
	h.mu.Unlock()
	return b, nil
}

func (h *PipelineCtrl) current() (*pipeline.Board, error) {
	h.mu.Lock()
	b := h.board
	h.mu.Unlock()
	if b != nil {
		return b, nil
	}
	return h.reload()
}

// Board rebuilds the grouping from the store and renders the six columns
// in pipeline order, each lead annotated with its age and urgency flag.
func (h *PipelineCtrl) Board(c echo.Context) error {
	b, err := h.reload()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	cols := b.Columns()
	now := time.Now()

	out := make([]boardColumn, 0, len(pipeline.BoardStages))
	for _, s := range pipeline.BoardStages {
		leads := cols[s]
		cards := make([]boardCard, 0, len(leads))
		for _, l := range leads {
			age := pipeline.AgeInDays(l.CreatedAt, now)
			cards = append(cards, boardCard{Lead: l, AgeDays: age, Urgent: pipeline.Urgent(s, age)})
		}
		out = append(out, boardColumn{Stage: s, Count: len(cards), Leads: cards})
	}
	return c.JSON(http.StatusOK, out)
}

// Move is the drag-and-drop stage change. The board applies the move
// optimistically and rolls it back if the store write fails.
func (h *PipelineCtrl) Move(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	b, err := h.current()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := b.Move(uint(id), pipeline.Stage(body.Status)); err != nil {
		switch {
		case errors.Is(err, pipeline.ErrUnknownStage):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, pipeline.ErrLeadNotFound), errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		default:
			h.log.Error("stage change failed", "lead_id", id, "target", body.Status, "err", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Advance is the quick-advance affordance: one step along the forward
// chain. Terminal leads have no next stage.
func (h *PipelineCtrl) Advance(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	next, ok := pipeline.NextStage(pipeline.Stage(l.Status))
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": "lead has no next stage"})
	}

	b, err := h.current()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := b.Move(l.LeadID, next); err != nil {
		if errors.Is(err, pipeline.ErrLeadNotFound) {
			// board snapshot predates this lead; write through directly
			if err := h.repo.UpdateStatus(l.LeadID, string(next)); err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
		} else {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(next)})
}

func (h *PipelineCtrl) Stats(c echo.Context) error {
	stats, err := h.dash.PipelineStats(time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}
