package repository

import (
	"time"

	"agricrm/entities"
)

type PurchaseFilter struct {
	FarmerID  uint
	ProductID uint
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// Purchases are immutable: create, read, and cascade-delete only.
type PurchaseRepository interface {
	Create(p *entities.Purchase) error
	FindByID(id uint) (*entities.Purchase, error)
	// List returns purchases with product and farmer preloaded, newest
	// purchase_date first.
	List(f PurchaseFilter) ([]entities.Purchase, error)
}
