// Package export builds XLSX workbooks for the distributor's offline
// reporting: the farmer register and the purchase ledger.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"agricrm/entities"
	"agricrm/pkg/metrics"
)

const dateFmt = "2006-01-02"

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// Farmers renders one row per farmer with the register columns.
func Farmers(farmers []entities.Farmer) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Farmers"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"ID", "Name", "Phone", "Village", "District", "Crop Type", "Acreage", "Registered"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, fa := range farmers {
		acreage := ""
		if fa.Acreage != nil {
			acreage = fmt.Sprintf("%.2f", *fa.Acreage)
		}
		row := []interface{}{fa.FarmerID, fa.Name, fa.Phone, fa.Village, fa.District, fa.CropType, acreage, fa.CreatedAt.Format(dateFmt)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Purchases renders the ledger with the computed line revenue; a missing
// quantity or price shows a zero line, same as the dashboard aggregates.
func Purchases(purchases []entities.Purchase) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Purchases"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"ID", "Date", "Farmer", "Product", "Category", "Quantity", "Unit Price", "Line Revenue"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, p := range purchases {
		farmer, product, category := "", "", ""
		var price float64
		if p.Farmer != nil {
			farmer = p.Farmer.Name
		}
		if p.Product != nil {
			product = p.Product.Name
			category = p.Product.Category
			if p.Product.Price != nil {
				price = *p.Product.Price
			}
		}
		qty := 0
		if p.Quantity != nil {
			qty = *p.Quantity
		}
		row := []interface{}{p.PurchaseID, p.PurchaseDate.Format(dateFmt), farmer, product, category, qty, price, metrics.LineRevenue(p)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Filename stamps an export with the day it was generated.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, now.Format(dateFmt))
}
