package repository

import (
	"time"

	"agricrm/entities"
)

type LeadFilter struct {
	Status string // exact match, one of the seven stages
	Source string // exact match
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type LeadRepository interface {
	Create(l *entities.Lead) error
	FindByID(id uint) (*entities.Lead, error)
	// List returns leads with their farmer preloaded, newest first.
	List(f LeadFilter) ([]entities.Lead, error)
	Update(l *entities.Lead) error
	// UpdateStatus writes only the status column. Satisfies
	// pipeline.StatusWriter.
	UpdateStatus(leadID uint, status string) error
	Delete(id uint) error
	Count() (int64, error)
}
