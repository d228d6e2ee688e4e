package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	OwnerID     string  `gorm:"uniqueIndex;not null" json:"owner_id"` // one shop per seller
	Owner       User    `gorm:"foreignKey:OwnerID" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;not null" json:"slug"`
	Description string  `json:"description"`
	LogoURL     string  `json:"logo_url"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone"`
	IsVerified  bool    `gorm:"default:false" json:"is_verified"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	TotalSales  int     `gorm:"default:0" json:"total_sales"`

	Products  []Product `gorm:"foreignKey:ShopID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
