package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusPickedUp  DeliveryStatus = "picked_up"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// ActiveDeliveryStatuses are the states that count against a rider's
// one-active-delivery limit.
var ActiveDeliveryStatuses = []DeliveryStatus{
	DeliveryStatusAssigned,
	DeliveryStatusPickedUp,
	DeliveryStatusInTransit,
}

// BodaProfile is the courier profile of a user with role "boda".
type BodaProfile struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"uniqueIndex;not null" json:"user_id"`
	User             User      `gorm:"foreignKey:UserID" json:"-"`
	VehicleType      string    `gorm:"default:'motorcycle'" json:"vehicle_type"`
	VehiclePlate     string    `json:"vehicle_plate"`
	LicenseNumber    string    `json:"license_number"`
	IsAvailable      bool      `gorm:"default:true" json:"is_available"`
	IsVerified       bool      `gorm:"default:false" json:"is_verified"`
	CurrentLatitude  float64   `json:"current_latitude"`
	CurrentLongitude float64   `json:"current_longitude"`
	TotalDeliveries  int       `gorm:"default:0" json:"total_deliveries"`
	Rating           float64   `gorm:"default:5" json:"rating"`
	TotalEarnings    float64   `gorm:"default:0" json:"total_earnings"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

func (b *BodaProfile) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Delivery is created alongside each order and carried out by one rider.
type Delivery struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	OrderID            string         `gorm:"uniqueIndex;not null" json:"order_id"`
	Order              Order          `gorm:"foreignKey:OrderID" json:"order"`
	BodaID             *string        `gorm:"index" json:"boda_id"`
	Status             DeliveryStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PickupAddress      string         `json:"pickup_address"`
	PickupLatitude     float64        `json:"pickup_latitude"`
	PickupLongitude    float64        `json:"pickup_longitude"`
	DeliveryAddress    string         `json:"delivery_address"`
	DeliveryLatitude   float64        `json:"delivery_latitude"`
	DeliveryLongitude  float64        `json:"delivery_longitude"`
	DistanceKm         float64        `json:"distance_km"`
	EstimatedTime      int            `json:"estimated_time"` // minutes
	ActualPickupTime   *time.Time     `json:"actual_pickup_time"`
	ActualDeliveryTime *time.Time     `json:"actual_delivery_time"`
	DeliveryFee        float64        `json:"delivery_fee"`
	BodaEarnings       float64        `gorm:"default:0" json:"boda_earnings"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"-"`
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
