package models

import "time"

type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomID      *uint     `json:"roomId,omitempty"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
