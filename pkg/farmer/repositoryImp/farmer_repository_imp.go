package repositoryImp

import (
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(f *entities.Farmer) error { return r.db.Create(f).Error }

func (r *farmerRepo) FindByID(id uint) (*entities.Farmer, error) {
	var f entities.Farmer
	err := r.db.
		Preload("Leads").
		Preload("Purchases").
		Preload("Purchases.Product").
		First(&f, "farmer_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) FindByPhone(phone string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.Where("phone = ?", phone).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) List(f repository.FarmerFilter) ([]entities.Farmer, error) {
	q := r.db.Model(&entities.Farmer{})
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.CropType != "" {
		q = q.Where("crop_type = ?", f.CropType)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []entities.Farmer
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmerRepo) Update(f *entities.Farmer) error { return r.db.Save(f).Error }

func (r *farmerRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Farmer{}, "farmer_id = ?", id).Error
}

func (r *farmerRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Farmer{}).Count(&n).Error
	return n, err
}
