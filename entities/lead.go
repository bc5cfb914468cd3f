package entities

import "time"

type Lead struct {
	LeadID   uint   `gorm:"primaryKey" json:"lead_id"`
	FarmerID uint   `gorm:"index" json:"farmer_id"`
	Status   string `gorm:"index;default:new" json:"status"` // new|contacted|interested|qualified|negotiation|won|lost
	Source   string `json:"source,omitempty"`                // acquisition channel (walk-in|referral|field-visit|...)
	Notes    string `json:"notes,omitempty"`

	Farmer *Farmer `gorm:"belongsTo;foreignKey:FarmerID" json:"farmer,omitempty"`

	// CreatedAt doubles as the entered-pipeline timestamp; there is no
	// per-stage timestamp, so "days in stage" is days since creation.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
