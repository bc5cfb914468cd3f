package repositoryImp

import (
	"gorm.io/gorm"

	"agricrm/entities"
	"agricrm/pkg/lead/repository"
)

type leadRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LeadRepository { return &leadRepo{db} }

func (r *leadRepo) Create(l *entities.Lead) error { return r.db.Create(l).Error }

func (r *leadRepo) FindByID(id uint) (*entities.Lead, error) {
	var l entities.Lead
	if err := r.db.Preload("Farmer").First(&l, "lead_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepo) List(f repository.LeadFilter) ([]entities.Lead, error) {
	q := r.db.Model(&entities.Lead{}).Preload("Farmer")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
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
	var out []entities.Lead
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *leadRepo) Update(l *entities.Lead) error { return r.db.Save(l).Error }

func (r *leadRepo) UpdateStatus(leadID uint, status string) error {
	res := r.db.Model(&entities.Lead{}).Where("lead_id = ?", leadID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leadRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Lead{}, "lead_id = ?", id).Error
}

func (r *leadRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Lead{}).Count(&n).Error
	return n, err
}
