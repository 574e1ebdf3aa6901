package models

import "time"

type MenuItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Description  *string    `gorm:"type:text" json:"description"`
	Price        Money      `gorm:"type:decimal(10,2);not null" json:"price"`
	Category     Category   `gorm:"type:text;not null" json:"category"`
	Image        *string    `gorm:"type:text" json:"image"`
	IsAvailable  *bool      `gorm:"default:true" json:"isAvailable"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
