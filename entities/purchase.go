package entities

import "time"

// Purchase rows are immutable once created: there is no edit flow, only
// cascading deletes via Farmer or Product. Line revenue is always computed
// as quantity x product price at read time, never stored.
type Purchase struct {
	PurchaseID   uint      `gorm:"primaryKey" json:"purchase_id"`
	FarmerID     uint      `gorm:"index" json:"farmer_id"`
	ProductID    uint      `gorm:"index" json:"product_id"`
	Quantity     *int      `json:"quantity,omitempty"`
	PurchaseDate time.Time `gorm:"index" json:"purchase_date"`

	Farmer  *Farmer  `gorm:"belongsTo;foreignKey:FarmerID" json:"farmer,omitempty"`
	Product *Product `gorm:"belongsTo;foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
