package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review attaches a 1-5 star rating to a shop and/or a product,
// optionally tied to the order that earned it.
type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ShopID    *string   `gorm:"index" json:"shop_id"`
	ProductID *string   `gorm:"index" json:"product_id"`
	OrderID   *string   `json:"order_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
