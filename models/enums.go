package models

// The value sets below are stored as open text columns. Callers that want a
// closed set check Valid before persisting.

type Role string

const (
	RoleCustomer Role = "customer"
	RoleKitchen  Role = "kitchen"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleKitchen, RoleAdmin:
		return true
	}
	return false
}

type Category string

const (
	CategoryVeg      Category = "veg"
	CategoryNonVeg   Category = "non-veg"
	CategoryDesserts Category = "desserts"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVeg, CategoryNonVeg, CategoryDesserts:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCooking   OrderStatus = "cooking"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCooking, OrderReady, OrderServed, OrderCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
