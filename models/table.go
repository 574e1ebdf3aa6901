package models

import "time"

// Table is a physical dining table. QRCode is printed on the table and
// resolves back to it when a customer scans it.
type Table struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Number       int32      `gorm:"not null" json:"number"`
	Capacity     int32      `gorm:"not null" json:"capacity"`
	IsAvailable  *bool      `gorm:"default:true" json:"isAvailable"`
	QRCode       string     `gorm:"column:qr_code;size:255;not null;uniqueIndex" json:"qrCode"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (Table) TableName() string {
	return "tables"
}
