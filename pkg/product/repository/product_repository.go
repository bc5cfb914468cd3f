package repository

import "agricrm/entities"

type ProductFilter struct {
	Category string // exact match
	Search   string // substring on name or description
	Limit    int
	Offset   int
}

type ProductRepository interface {
	Create(p *entities.Product) error
	FindByID(id uint) (*entities.Product, error)
	List(f ProductFilter) ([]entities.Product, error)
	Update(p *entities.Product) error
	Delete(id uint) error
	Count() (int64, error)
}
