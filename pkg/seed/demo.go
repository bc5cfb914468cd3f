package seed

import (
	"time"

	"gorm.io/gorm"

	"agricrm/entities"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

// Demo inserts a small starter dataset when the database is empty, so a
// fresh install renders something. No-op on a populated database.
func Demo(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.Farmer{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	farmers := []entities.Farmer{
		{Name: "Ramesh Patel", Phone: "9876500011", Village: "Khedbrahma", District: "North District", CropType: "cotton", Acreage: ptrF(5.5)},
		{Name: "Sita Devi", Phone: "9876500012", Village: "Mandvi", District: "South District", CropType: "wheat", Acreage: ptrF(3.0)},
		{Name: "Arjun Singh", Phone: "9876500013", Village: "Bansur", District: "East District", CropType: "sugarcane", Acreage: ptrF(8.2)},
	}
	if err := db.Create(&farmers).Error; err != nil {
		return err
	}

	products := []entities.Product{
		{Name: "Hybrid Cotton Seed 450g", Category: "Seeds", Price: ptrF(850)},
		{Name: "NPK 19-19-19 25kg", Category: "Fertilizers", Price: ptrF(1450), Description: "Water-soluble complex fertilizer"},
		{Name: "Drip Lateral 16mm 100m", Category: "Irrigation", Price: ptrF(2100)},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	leads := []entities.Lead{
		{FarmerID: farmers[0].FarmerID, Status: "new", Source: "field-visit", Notes: "Asked about drip kits"},
		{FarmerID: farmers[1].FarmerID, Status: "contacted", Source: "referral"},
		{FarmerID: farmers[2].FarmerID, Status: "won", Source: "walk-in", Notes: "Bought fertilizer for ratoon crop"},
	}
	if err := db.Create(&leads).Error; err != nil {
		return err
	}

	purchases := []entities.Purchase{
		{FarmerID: farmers[2].FarmerID, ProductID: products[1].ProductID, Quantity: ptrI(4), PurchaseDate: time.Now().AddDate(0, 0, -2)},
		{FarmerID: farmers[0].FarmerID, ProductID: products[0].ProductID, Quantity: ptrI(2), PurchaseDate: time.Now().AddDate(0, 0, -10)},
	}
	return db.Create(&purchases).Error
}
