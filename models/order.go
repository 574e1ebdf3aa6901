package models

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID            uint                           `gorm:"primaryKey" json:"id"`
	CustomerID    *uint                          `gorm:"index" json:"customerId"`
	Customer      *User                          `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	RestaurantID  uint                           `gorm:"not null;index" json:"restaurantId"`
	Restaurant    Restaurant                     `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableID       uint                           `gorm:"not null;index" json:"tableId"`
	Table         Table                          `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Items         datatypes.JSONSlice[OrderLine] `gorm:"not null" json:"items"`
	Total         Money                          `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        OrderStatus                    `gorm:"type:text;not null;default:'pending'" json:"status"`
	CustomerName  *string                        `gorm:"type:text" json:"customerName"`
	CustomerPhone *string                        `gorm:"type:text" json:"customerPhone"`
	PaymentStatus PaymentStatus                  `gorm:"type:text;default:'pending'" json:"paymentStatus"`
	CreatedAt     time.Time                      `json:"createdAt"`
	UpdatedAt     time.Time                      `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderLine is one element of orders.items. Price is the unit price at the
// time the order was placed.
type OrderLine struct {
	MenuItemID uint  `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
	Price      Money `json:"price"`
}
