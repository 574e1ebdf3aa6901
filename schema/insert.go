// Package schema defines the insert shapes of every entity and decodes client
// payloads into them. Only allow-listed fields are accepted.
package schema

import (
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/datatypes"
)

// Insert shapes. Each struct carries exactly the fields a client may supply
// when creating a row; everything else is assigned by the server.

type InsertUser struct {
	Username string      `json:"username" validate:"required,max=255"`
	Password string      `json:"password" validate:"required,maxbytes=72"` // bcrypt input limit
	Role     models.Role `json:"role"`
}

func (in InsertUser) Model() models.User {
	return models.User{
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	}
}

type InsertRestaurant struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (in InsertRestaurant) Model() models.Restaurant {
	return models.Restaurant{
		Name:        in.Name,
		Description: in.Description,
	}
}

type InsertMenuItem struct {
	RestaurantID uint            `json:"restaurantId" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  *string         `json:"description"`
	Price        *models.Money   `json:"price" validate:"required,money"`
	Category     models.Category `json:"category" validate:"required"`
	Image        *string         `json:"image"`
	IsAvailable  *bool           `json:"isAvailable"`
}

func (in InsertMenuItem) Model() models.MenuItem {
	item := models.MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Image:        in.Image,
		IsAvailable:  in.IsAvailable,
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	return item
}

type InsertTable struct {
	RestaurantID uint   `json:"restaurantId" validate:"required"`
	Number       *int32 `json:"number" validate:"required"`
	Capacity     *int32 `json:"capacity" validate:"required,gt=0"`
}

func (in InsertTable) Model() models.Table {
	table := models.Table{RestaurantID: in.RestaurantID}
	if in.Number != nil {
		table.Number = *in.Number
	}
	if in.Capacity != nil {
		table.Capacity = *in.Capacity
	}
	return table
}

// OrderLineInput is the validated form of one orders.items element.
type OrderLineInput struct {
	MenuItemID uint          `json:"menuItemId" validate:"required"`
	Quantity   int           `json:"quantity" validate:"required,gt=0"`
	Price      *models.Money `json:"price" validate:"required,money"`
}

type InsertOrder struct {
	CustomerID    *uint            `json:"customerId" validate:"omitempty,gt=0"`
	RestaurantID  uint             `json:"restaurantId" validate:"required"`
	TableID       uint             `json:"tableId" validate:"required"`
	Items         []OrderLineInput `json:"items" validate:"required,min=1,dive"`
	Total         *models.Money    `json:"total" validate:"required,money"`
	CustomerName  *string          `json:"customerName"`
	CustomerPhone *string          `json:"customerPhone"`
}

// Model leaves Status and PaymentStatus empty so the column defaults apply.
func (in InsertOrder) Model() models.Order {
	lines := make(datatypes.JSONSlice[models.OrderLine], 0, len(in.Items))
	for _, item := range in.Items {
		line := models.OrderLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
		if item.Price != nil {
			line.Price = *item.Price
		}
		lines = append(lines, line)
	}
	order := models.Order{
		CustomerID:    in.CustomerID,
		RestaurantID:  in.RestaurantID,
		TableID:       in.TableID,
		Items:         lines,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	return order
}

type InsertSession struct {
	TableID      uint                 `json:"tableId" validate:"required"`
	CustomerInfo *models.CustomerInfo `json:"customerInfo"`
}

// Model leaves ExpiresAt unset; the caller owns the session lifetime.
func (in InsertSession) Model() models.Session {
	session := models.Session{TableID: in.TableID}
	if in.CustomerInfo != nil {
		info := datatypes.NewJSONType(*in.CustomerInfo)
		session.CustomerInfo = &info
	}
	return session
}
