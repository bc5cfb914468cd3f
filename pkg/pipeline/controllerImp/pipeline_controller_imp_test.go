package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agricrm/database"
	"agricrm/entities"
	frepoImp "agricrm/pkg/farmer/repositoryImp"
	lrepoImp "agricrm/pkg/lead/repositoryImp"
	"agricrm/pkg/logger"
	mserviceImp "agricrm/pkg/metrics/serviceImp"
	prepoImp "agricrm/pkg/product/repositoryImp"
	purepoImp "agricrm/pkg/purchase/repositoryImp"
)

func newTestCtrl(t *testing.T) (*PipelineCtrl, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	leads := lrepoImp.New(db)
	dash := mserviceImp.New(leads, frepoImp.New(db), prepoImp.New(db), purepoImp.New(db))
	return New(leads, dash, logger.NewNop()), db
}

func seedLead(t *testing.T, db *gorm.DB, status string, daysAgo int) *entities.Lead {
	t.Helper()
	f := entities.Farmer{Name: "Ramesh Patel"}
	require.NoError(t, db.Create(&f).Error)
	l := &entities.Lead{FarmerID: f.FarmerID, Status: status}
	require.NoError(t, db.Create(l).Error)
	require.NoError(t, db.Model(&entities.Lead{}).
		Where("lead_id = ?", l.LeadID).
		Update("created_at", time.Now().AddDate(0, 0, -daysAgo)).Error)
	return l
}

func do(t *testing.T, h echo.HandlerFunc, method, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

type columnResp struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	Leads []struct {
		LeadID  uint `json:"lead_id"`
		AgeDays int  `json:"age_days"`
		Urgent  bool `json:"urgent"`
	} `json:"leads"`
}

func TestBoard(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	seedLead(t, db, "new", 5)  // urgent: new past three days
	seedLead(t, db, "won", 1)
	seedLead(t, db, "lost", 1) // never on the board

	rec := do(t, ctrl.Board, http.MethodGet, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cols []columnResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cols))
	require.Len(t, cols, 6)
	assert.Equal(t, "new", cols[0].Stage)
	assert.Equal(t, "won", cols[5].Stage)

	require.Equal(t, 1, cols[0].Count)
	assert.Equal(t, 5, cols[0].Leads[0].AgeDays)
	assert.True(t, cols[0].Leads[0].Urgent)
	assert.Equal(t, 1, cols[5].Count)
	assert.False(t, cols[5].Leads[0].Urgent)
}

func TestBoardEmpty(t *testing.T) {
	ctrl, _ := newTestCtrl(t)

	rec := do(t, ctrl.Board, http.MethodGet, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cols []columnResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cols))
	require.Len(t, cols, 6)
	for _, col := range cols {
		assert.Zero(t, col.Count)
		assert.NotNil(t, col.Leads)
	}
}

func TestMove(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	l := seedLead(t, db, "new", 0)

	// board must be loaded before a move can find the lead
	do(t, ctrl.Board, http.MethodGet, "", nil)

	rec := do(t, ctrl.Move, http.MethodPatch, `{"status":"negotiation"}`, map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Lead
	require.NoError(t, db.First(&got, "lead_id = ?", l.LeadID).Error)
	assert.Equal(t, "negotiation", got.Status)
}

func TestMoveUnknownStage(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	seedLead(t, db, "new", 0)
	do(t, ctrl.Board, http.MethodGet, "", nil)

	rec := do(t, ctrl.Move, http.MethodPatch, `{"status":"archived"}`, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveMissingLead(t *testing.T) {
	ctrl, _ := newTestCtrl(t)

	rec := do(t, ctrl.Move, http.MethodPatch, `{"status":"won"}`, map[string]string{"id": "42"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdvance(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	l := seedLead(t, db, "qualified", 0)

	rec := do(t, ctrl.Advance, http.MethodPost, "", map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "negotiation")

	var got entities.Lead
	require.NoError(t, db.First(&got, "lead_id = ?", l.LeadID).Error)
	assert.Equal(t, "negotiation", got.Status)
}

func TestAdvanceTerminal(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	seedLead(t, db, "won", 0)

	rec := do(t, ctrl.Advance, http.MethodPost, "", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	seedLead(t, db, "lost", 0)
	rec = do(t, ctrl.Advance, http.MethodPost, "", map[string]string{"id": "2"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdvanceMissingLead(t *testing.T) {
	ctrl, _ := newTestCtrl(t)
	rec := do(t, ctrl.Advance, http.MethodPost, "", map[string]string{"id": "7"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	seedLead(t, db, "new", 0)
	seedLead(t, db, "won", 0)

	rec := do(t, ctrl.Stats, http.MethodGet, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		ActiveOpportunities int     `json:"active_opportunities"`
		ConversionRate      float64 `json:"conversion_rate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.ActiveOpportunities)
	assert.Equal(t, 50.0, stats.ConversionRate)
}
