package models

import "time"

// Table là bàn trong nhà hàng của khách sạn
type Table struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TableNumber string    `json:"tableNumber" gorm:"uniqueIndex;not null"`
	Capacity    int       `json:"capacity"`
	Status      int       `json:"status" gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
