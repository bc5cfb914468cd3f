package entities

import "time"

type Product struct {
	ProductID   uint     `gorm:"primaryKey" json:"product_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    string   `gorm:"index" json:"category,omitempty"` // seeds|fertilizers|pesticides|tools|irrigation

	Purchases []Purchase `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"purchases,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
