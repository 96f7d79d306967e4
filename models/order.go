package models

import "time"

// Order belongs to exactly one user and carries a set of ordered products
// through the order_products join table.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DeliveryAddress string    `gorm:"type:text;not null" json:"delivery_address"`
	Promocode       string    `gorm:"size:20" json:"promocode"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	Receipt         string    `gorm:"size:255" json:"receipt,omitempty"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Products        []Product `gorm:"many2many:order_products" json:"products,omitempty"`
}
