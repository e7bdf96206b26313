package models

import "time"

type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId" gorm:"index"`
	Room         *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CustomerID   *uint     `json:"customerId"`
	Customer     *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index;not null"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index;not null"`
	Status       int       `json:"status" gorm:"default:0"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
