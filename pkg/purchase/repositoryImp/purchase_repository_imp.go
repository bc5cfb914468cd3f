package repositoryImp

import (
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/purchase/repository"
)

type purchaseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PurchaseRepository { return &purchaseRepo{db} }

func (r *purchaseRepo) Create(p *entities.Purchase) error { return r.db.Create(p).Error }

func (r *purchaseRepo) FindByID(id uint) (*entities.Purchase, error) {
	var p entities.Purchase
	err := r.db.Preload("Product").Preload("Farmer").
		First(&p, "purchase_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) List(f repository.PurchaseFilter) ([]entities.Purchase, error) {
	q := r.db.Model(&entities.Purchase{}).Preload("Product").Preload("Farmer")
	if f.FarmerID != 0 {
		q = q.Where("farmer_id = ?", f.FarmerID)
	}
	if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}
	if f.From != nil {
		q = q.Where("purchase_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("purchase_date <= ?", *f.To)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []entities.Purchase
	if err := q.Order("purchase_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
