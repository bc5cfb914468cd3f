package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agricrm/database"
	"agricrm/entities"
	"agricrm/pkg/farmer/repositoryImp"
)

func newTestCtrl(t *testing.T) (*FarmerCtrl, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(repositoryImp.New(db)), db
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestCreateFarmer(t *testing.T) {
	ctrl, db := newTestCtrl(t)

	rec := doJSON(t, ctrl.Create, http.MethodPost, "/farmers",
		`{"name":"Ramesh Patel","phone":"9876500001","district":"North District","crop_type":"Wheat","acreage":12.5}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.Farmer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.NotZero(t, f.FarmerID)
	assert.Equal(t, "Ramesh Patel", f.Name)

	var n int64
	require.NoError(t, db.Model(&entities.Farmer{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCreateFarmerValidation(t *testing.T) {
	ctrl, _ := newTestCtrl(t)

	rec := doJSON(t, ctrl.Create, http.MethodPost, "/farmers", `{"name":"No Phone"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, ctrl.Create, http.MethodPost, "/farmers", `{"phone":"9876500001"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFarmer(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	f := entities.Farmer{Name: "Sita Devi", Phone: "9876500002"}
	require.NoError(t, db.Create(&f).Error)

	rec := doJSON(t, ctrl.Get, http.MethodGet, "/farmers/1", "", map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sita Devi")

	rec = doJSON(t, ctrl.Get, http.MethodGet, "/farmers/99", "", map[string]string{"id": "99"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFarmersFiltered(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	require.NoError(t, db.Create(&entities.Farmer{Name: "Ramesh Patel", Phone: "1", District: "North District"}).Error)
	require.NoError(t, db.Create(&entities.Farmer{Name: "Sita Devi", Phone: "2", District: "South District"}).Error)

	rec := doJSON(t, ctrl.List, http.MethodGet, "/farmers?district=North+District", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.Farmer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Ramesh Patel", out[0].Name)
}

func TestPatchFarmer(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	f := entities.Farmer{Name: "Mohan Kumar", Phone: "9876500003", CropType: "Wheat"}
	require.NoError(t, db.Create(&f).Error)

	rec := doJSON(t, ctrl.Update, http.MethodPut, "/farmers/1",
		`{"crop_type":"Sugarcane"}`, map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Farmer
	require.NoError(t, db.First(&got, "farmer_id = ?", f.FarmerID).Error)
	assert.Equal(t, "Sugarcane", got.CropType)
	assert.Equal(t, "Mohan Kumar", got.Name) // untouched fields survive
}

func TestDeleteFarmerCascades(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	f := entities.Farmer{Name: "Ramesh Patel", Phone: "9876500001"}
	require.NoError(t, db.Create(&f).Error)
	require.NoError(t, db.Create(&entities.Lead{FarmerID: f.FarmerID, Status: "new"}).Error)

	rec := doJSON(t, ctrl.Delete, http.MethodDelete, "/farmers/1", "", map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var leads int64
	require.NoError(t, db.Model(&entities.Lead{}).Count(&leads).Error)
	assert.Zero(t, leads)
}
