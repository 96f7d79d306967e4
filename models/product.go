package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Products are never hard-deleted:
// instead they are archived and excluded from the default listing.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"pk"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	Discount    int             `gorm:"not null;default:0" json:"discount"`
	Preview     string          `gorm:"size:255" json:"preview,omitempty"`
	Archived    bool            `gorm:"not null;default:false" json:"archived"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// ProductImage is an uploaded image attached to a product. Image holds the
// object storage key, not the raw bytes.
type ProductImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProductID   uint   `gorm:"not null;index" json:"product_id"`
	Image       string `gorm:"size:255;not null" json:"image"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
