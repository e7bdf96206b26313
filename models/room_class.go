package models

import "time"

type RoomClass struct {
	ID                      uint      `json:"id" gorm:"primaryKey"`
	Name                    string    `json:"name" gorm:"not null"`
	BasePrice               int       `json:"basePrice"`
	CleaningFrequencyDays   int       `json:"cleaningFrequencyDays" gorm:"default:3"` // Số ngày giữa 2 lần dọn
	CleaningDueNotification bool      `json:"cleaningDueNotification" gorm:"default:true"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
