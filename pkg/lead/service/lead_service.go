package service

import "agricrm/entities"

// NewLead carries the create form. Either FarmerID points at an existing
// farmer, or the farmer fields describe one to look up by phone and create
// if missing.
type NewLead struct {
	FarmerID   uint     `json:"farmer_id"`
	FarmerName string   `json:"farmer_name"`
	Phone      string   `json:"phone"`
	Village    string   `json:"village"`
	District   string   `json:"district"`
	CropType   string   `json:"crop_type"`
	Acreage    *float64 `json:"acreage"`

	Status string `json:"status"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

type LeadService interface {
	CreateLead(in NewLead) (*entities.Lead, error)
	UpdateStatus(leadID uint, status string) (*entities.Lead, error)
}
