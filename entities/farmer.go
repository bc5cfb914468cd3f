package entities

import "time"

type Farmer struct {
	FarmerID uint     `gorm:"primaryKey" json:"farmer_id"`
	Name     string   `json:"name"`
	Phone    string   `gorm:"index" json:"phone"`
	Village  string   `json:"village,omitempty"`
	District string   `gorm:"index" json:"district,omitempty"` // doubles as sales territory
	CropType string   `json:"crop_type,omitempty"`
	Acreage  *float64 `json:"acreage,omitempty"`

	Leads     []Lead     `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE" json:"leads,omitempty"`
	Purchases []Purchase `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE" json:"purchases,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
