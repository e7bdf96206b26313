package models

import (
	"fmt"
	"time"
)

type Room struct {
	RoomId         uint          `json:"id" gorm:"primaryKey"`
	RoomClassID    uint          `json:"roomClassId"`
	RoomNumber     string        `json:"roomNumber" gorm:"uniqueIndex;not null"`
	Floor          int           `json:"floor"`
	Description    string        `json:"description"`
	IsAvailable    bool          `json:"isAvailable" gorm:"default:true"` // false = phòng bị khóa để bảo trì
	CleaningStatus int           `json:"cleaningStatus" gorm:"default:0"`
	LastCleaned    *time.Time    `json:"lastCleaned"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomClass      RoomClass     `json:"roomClass" gorm:"foreignKey:RoomClassID"`
	Reservations   []Reservation `json:"reservations,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateCleaningStatus() error {
	if r.CleaningStatus < 0 || r.CleaningStatus > 1 {
		return fmt.Errorf("invalid cleaning status: %d", r.CleaningStatus)
	}
	return nil
}
