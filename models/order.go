package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (one order per shop; multi-shop carts split at checkout)
	OrderStatusPending   OrderStatus = "pending"    // placed, awaiting seller confirmation
	OrderStatusConfirmed OrderStatus = "confirmed"  // confirmed by seller
	OrderStatusPreparing OrderStatus = "preparing"  // seller is preparing the items
	OrderStatusReady     OrderStatus = "ready"      // packed and ready for a rider
	OrderStatusPickedUp  OrderStatus = "picked_up"  // a rider has taken the delivery
	OrderStatusInTransit OrderStatus = "in_transit" // on the way to the customer
	OrderStatusDelivered OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled"  // cancelled by customer, seller, or failed delivery

	// Payment statuses
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Checkout pricing constants.
const (
	DeliveryFee      = 500.0 // flat fee per shop order
	PlatformFeeRate  = 0.05  // 5% of subtotal retained by the platform
	BodaEarningsRate = 0.8   // rider's share of the delivery fee
)

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"index;not null" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"-"`
	ShopID          string      `gorm:"index;not null" json:"shop_id"`
	Shop            Shop        `gorm:"foreignKey:ShopID" json:"shop"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	PlatformFee     float64     `json:"platform_fee"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	Phone           string      `json:"phone"`
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is a snapshot of a product at order time. Later edits to the
// live product record never change historical orders.
type OrderItem struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	OrderID      string    `gorm:"index;not null" json:"order_id"`
	ProductID    *string   `json:"product_id"` // nulled if the product is deleted
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"-"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

type Payment struct {
	ID             string        `gorm:"primaryKey" json:"id"`
	OrderID        string        `gorm:"uniqueIndex;not null" json:"order_id"`
	Amount         float64       `json:"amount"`
	Method         string        `json:"method"` // e.g. "mpesa", "cash", "card"
	Status         PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TransactionRef string        `json:"transaction_ref"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
