package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:text;not null;default:'customer'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
