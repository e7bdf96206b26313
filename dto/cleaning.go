package dto

import "time"

// CleaningScheduleItem là một dòng trên màn hình lịch dọn phòng
type CleaningScheduleItem struct {
	RoomID                uint       `json:"roomId"`
	RoomNumber            string     `json:"roomNumber"`
	Floor                 int        `json:"floor"`
	RoomClassName         string     `json:"roomClassName"`
	CleaningFrequencyDays int        `json:"cleaningFrequencyDays"`
	CleaningStatus        int        `json:"cleaningStatus"`
	LastCleaned           *time.Time `json:"lastCleaned"`
	NextCleaningDue       *time.Time `json:"nextCleaningDue"`
	Bucket                int        `json:"bucket"`
	BucketLabel           string     `json:"bucketLabel"`
}

// MarkCleanedRequest là DTO cho request đánh dấu phòng đã dọn
type MarkCleanedRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CleaningDate string `json:"cleaningDate" binding:"required"` // 02/01/2006 hoặc 02/01/2006 15:04
	Notes        string `json:"notes,omitempty"`
}

// CleaningFrequencyRequest là DTO cho request cập nhật tần suất dọn của hạng phòng
type CleaningFrequencyRequest struct {
	RoomClassID             uint `json:"roomClassId" binding:"required"`
	CleaningFrequencyDays   int  `json:"cleaningFrequencyDays" binding:"required"`
	CleaningDueNotification bool `json:"cleaningDueNotification"`
}
