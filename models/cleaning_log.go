package models

import "time"

// CleaningLog lưu lịch sử dọn phòng, mỗi lần "đánh dấu đã dọn" thêm một dòng
type CleaningLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId" gorm:"index;not null"`
	Room         *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CleaningDate time.Time `json:"cleaningDate" gorm:"not null"`
	Notes        string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
