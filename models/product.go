package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ParentID    *string   `json:"parent_id"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Product struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	ShopID        string    `gorm:"index;not null" json:"shop_id"`
	Shop          Shop      `gorm:"foreignKey:ShopID" json:"shop"`
	CategoryID    *string   `gorm:"index" json:"category_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	DiscountPrice *float64  `json:"discount_price"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	Images        []string  `gorm:"serializer:json" json:"images"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// EffectivePrice returns the discount price when set, else the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}
