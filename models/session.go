package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session tracks a customer sitting at a table, from QR scan until it expires.
type Session struct {
	ID           uint                              `gorm:"primaryKey" json:"id"`
	TableID      uint                              `gorm:"not null;index" json:"tableId"`
	Table        Table                             `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	IsActive     *bool                             `gorm:"default:true" json:"isActive"`
	CustomerInfo *datatypes.JSONType[CustomerInfo] `json:"customerInfo"`
	CreatedAt    time.Time                         `json:"createdAt"`
	ExpiresAt    *time.Time                        `json:"expiresAt"`
}

func (Session) TableName() string {
	return "sessions"
}

type CustomerInfo struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
