package domain

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is the durable record created when checkout succeeds. Staff only
// ever mutate Status after creation; orders are never deleted.
type Order struct {
	ID            string
	Customer      Customer
	Items         []OrderItem
	PaymentMethod string
	Subtotal      float64
	Tax           float64
	Deposit       float64
	Total         float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID           uint
	OrderID      string
	PersonName   string
	Gender       Gender
	AgeGroup     AgeGroup
	Occasion     string
	DesignID     string
	DesignName   string
	Price        float64
	SizingMode   SizingMode
	SizeLabel    string
	Measurements map[string]float64
}

type Customer struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
	Notes     string
	CreatedAt time.Time
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo rejects movement out of a terminal status.
func (o Order) CanTransitionTo(status string) bool {
	if !IsValidOrderStatus(status) {
		return false
	}
	if o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled {
		return false
	}
	return true
}
