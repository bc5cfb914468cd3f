package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agricrm/database"
	"agricrm/entities"
)

func TestDemoPopulatesEmptyDatabase(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, Demo(db))

	var farmers, products, leads, purchases int64
	require.NoError(t, db.Model(&entities.Farmer{}).Count(&farmers).Error)
	require.NoError(t, db.Model(&entities.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&entities.Lead{}).Count(&leads).Error)
	require.NoError(t, db.Model(&entities.Purchase{}).Count(&purchases).Error)
	assert.Equal(t, int64(3), farmers)
	assert.Equal(t, int64(3), products)
	assert.Equal(t, int64(3), leads)
	assert.Equal(t, int64(2), purchases)
}

func TestDemoSkipsPopulatedDatabase(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Create(&entities.Farmer{Name: "Existing"}).Error)

	require.NoError(t, Demo(db))
	require.NoError(t, Demo(db)) // repeated runs stay no-ops

	var farmers int64
	require.NoError(t, db.Model(&entities.Farmer{}).Count(&farmers).Error)
	assert.Equal(t, int64(1), farmers)
}
