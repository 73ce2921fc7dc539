package models

import "time"

// Order statuses. Transitions are not enforced; UpdateStatus overwrites
// whatever string the caller supplies.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a denormalized line-item snapshot, not a catalog join.
// Name and price are trusted as submitted.
type OrderItem struct {
	MenuItemID     int     `json:"menuItemId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Customizations string  `json:"customizations,omitempty"`
}

type Order struct {
	ID                  int         `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID              *int        `json:"userId" gorm:"column:user_id"`
	Status              string      `json:"status" gorm:"column:status;not null;default:pending"`
	Total               float64     `json:"total" gorm:"column:total;not null"`
	Items               []OrderItem `json:"items" gorm:"column:items;serializer:json;not null"`
	SpecialInstructions *string     `json:"specialInstructions" gorm:"column:special_instructions"`
	EstimatedTime       *int        `json:"estimatedTime" gorm:"column:estimated_time"`
	CreatedAt           time.Time   `json:"createdAt" gorm:"column:created_at"`
	CompletedAt         *time.Time  `json:"completedAt" gorm:"column:completed_at"`
}

func (Order) TableName() string { return "orders" }
