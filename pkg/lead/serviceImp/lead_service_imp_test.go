package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agricrm/database"
	"agricrm/entities"
	frepoImp "agricrm/pkg/farmer/repositoryImp"
	"agricrm/pkg/lead/repositoryImp"
	"agricrm/pkg/lead/service"
)

func newTestService(t *testing.T) (service.LeadService, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(repositoryImp.New(db), frepoImp.New(db)), db
}

func TestCreateLeadWithExistingFarmerID(t *testing.T) {
	svc, db := newTestService(t)
	f := entities.Farmer{Name: "Ramesh Patel", Phone: "9876500001"}
	require.NoError(t, db.Create(&f).Error)

	l, err := svc.CreateLead(service.NewLead{FarmerID: f.FarmerID, Source: "Website"})
	require.NoError(t, err)
	assert.Equal(t, f.FarmerID, l.FarmerID)
	assert.Equal(t, "new", l.Status)
	require.NotNil(t, l.Farmer)
	assert.Equal(t, "Ramesh Patel", l.Farmer.Name)
}

func TestCreateLeadRegistersNewFarmer(t *testing.T) {
	svc, db := newTestService(t)

	acreage := 5.0
	l, err := svc.CreateLead(service.NewLead{
		FarmerName: "Sita Devi",
		Phone:      "9876500002",
		Village:    "Rampur",
		District:   "South District",
		CropType:   "Rice",
		Acreage:    &acreage,
		Source:     "Referral",
	})
	require.NoError(t, err)
	require.NotNil(t, l.Farmer)
	assert.Equal(t, "Sita Devi", l.Farmer.Name)
	assert.Equal(t, "South District", l.Farmer.District)

	var n int64
	require.NoError(t, db.Model(&entities.Farmer{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCreateLeadReusesFarmerByPhone(t *testing.T) {
	svc, db := newTestService(t)
	f := entities.Farmer{Name: "Mohan Kumar", Phone: "9876500003"}
	require.NoError(t, db.Create(&f).Error)

	// same phone, different spelling of the name: the existing record wins
	l, err := svc.CreateLead(service.NewLead{
		FarmerName: "M. Kumar",
		Phone:      "9876500003",
		Source:     "Trade Show",
	})
	require.NoError(t, err)
	assert.Equal(t, f.FarmerID, l.FarmerID)

	var n int64
	require.NoError(t, db.Model(&entities.Farmer{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCreateLeadValidation(t *testing.T) {
	svc, db := newTestService(t)
	f := entities.Farmer{Name: "Ramesh Patel", Phone: "9876500001"}
	require.NoError(t, db.Create(&f).Error)

	_, err := svc.CreateLead(service.NewLead{Source: "Website"})
	assert.ErrorIs(t, err, ErrMissingFarmer)

	_, err = svc.CreateLead(service.NewLead{FarmerName: "No Phone"})
	assert.ErrorIs(t, err, ErrMissingFarmer)

	_, err = svc.CreateLead(service.NewLead{FarmerID: f.FarmerID, Status: "archived"})
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestCreateLeadExplicitStatus(t *testing.T) {
	svc, db := newTestService(t)
	f := entities.Farmer{Name: "Ramesh Patel", Phone: "9876500001"}
	require.NoError(t, db.Create(&f).Error)

	l, err := svc.CreateLead(service.NewLead{FarmerID: f.FarmerID, Status: "qualified"})
	require.NoError(t, err)
	assert.Equal(t, "qualified", l.Status)
}

func TestUpdateStatus(t *testing.T) {
	svc, db := newTestService(t)
	f := entities.Farmer{Name: "Ramesh Patel", Phone: "9876500001"}
	require.NoError(t, db.Create(&f).Error)
	seed, err := svc.CreateLead(service.NewLead{FarmerID: f.FarmerID})
	require.NoError(t, err)

	l, err := svc.UpdateStatus(seed.LeadID, "negotiation")
	require.NoError(t, err)
	assert.Equal(t, "negotiation", l.Status)

	// backward move is legal
	l, err = svc.UpdateStatus(seed.LeadID, "contacted")
	require.NoError(t, err)
	assert.Equal(t, "contacted", l.Status)

	_, err = svc.UpdateStatus(seed.LeadID, "paused")
	assert.ErrorIs(t, err, ErrBadStatus)

	_, err = svc.UpdateStatus(9999, "won")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
