package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleBoda     Role = "boda" // motorcycle delivery rider
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Username     string  `gorm:"unique;not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         Role    `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Phone        string  `json:"phone"`
	AvatarURL    string  `json:"avatar_url"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	Orders    []Order   `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
