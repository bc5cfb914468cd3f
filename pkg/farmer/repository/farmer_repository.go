package repository

import (
	"time"

	"agricrm/entities"
)

type FarmerFilter struct {
	District string // exact match
	CropType string // exact match
	Search   string // substring on name or phone
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type FarmerRepository interface {
	Create(f *entities.Farmer) error
	FindByID(id uint) (*entities.Farmer, error)
	FindByPhone(phone string) (*entities.Farmer, error)
	List(f FarmerFilter) ([]entities.Farmer, error)
	Update(f *entities.Farmer) error
	Delete(id uint) error
	Count() (int64, error)
}
