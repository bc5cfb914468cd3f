package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agricrm/entities"
)

func TestFarmers(t *testing.T) {
	acreage := 12.5
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	farmers := []entities.Farmer{
		{FarmerID: 1, Name: "Ramesh Patel", Phone: "9876500001", Village: "Rampur", District: "North District", CropType: "Wheat", Acreage: &acreage, CreatedAt: created},
		{FarmerID: 2, Name: "Sita Devi", CreatedAt: created},
	}

	f, err := Farmers(farmers)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Farmers")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Ramesh Patel", rows[1][1])
	assert.Equal(t, "12.50", rows[1][6])
	assert.Equal(t, "2025-03-01", rows[1][7])
	// no acreage renders blank, not zero
	assert.Equal(t, "Sita Devi", rows[2][1])
}

func TestPurchases(t *testing.T) {
	qty := 4
	price := 50.0
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	purchases := []entities.Purchase{
		{
			PurchaseID:   1,
			PurchaseDate: date,
			Quantity:     &qty,
			Farmer:       &entities.Farmer{Name: "Ramesh Patel"},
			Product:      &entities.Product{Name: "Urea 45kg", Category: "Fertilizers", Price: &price},
		},
		{PurchaseID: 2, PurchaseDate: date}, // bare line still exports
	}

	f, err := Purchases(purchases)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Purchases")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Line Revenue", rows[0][7])
	assert.Equal(t, "Urea 45kg", rows[1][3])
	assert.Equal(t, "4", rows[1][5])
	assert.Equal(t, "200", rows[1][7])
	assert.Equal(t, "0", rows[2][7])
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "farmers-2025-03-15.xlsx", Filename("farmers", now))
}
