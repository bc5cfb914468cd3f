package repositoryImp

import (
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) FindByID(id uint) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.First(&p, "product_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(f repository.ProductFilter) ([]entities.Product, error) {
	q := r.db.Model(&entities.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []entities.Product
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(p *entities.Product) error { return r.db.Save(p).Error }

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Product{}, "product_id = ?", id).Error
}

func (r *productRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Product{}).Count(&n).Error
	return n, err
}
