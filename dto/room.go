package dto

import "time"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber  string `json:"roomNumber" binding:"required,roomnumber"`
	RoomClassID uint   `json:"roomClassId" binding:"required"`
	Floor       int    `json:"floor"`
	Description string `json:"description"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	RoomId      uint   `json:"id" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"omitempty,roomnumber"`
	RoomClassID uint   `json:"roomClassId"`
	Floor       int    `json:"floor"`
	Description string `json:"description"`
}

// RoomAvailabilityRequest là DTO cho request khóa/mở phòng bảo trì
type RoomAvailabilityRequest struct {
	RoomId      uint  `json:"id" binding:"required"`
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// ReservationSummary là thông tin đặt phòng kèm theo dòng trạng thái phòng
type ReservationSummary struct {
	ID           uint      `json:"id"`
	GuestName    string    `json:"guestName"`
	GuestPhone   string    `json:"guestPhone"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}

// RoomStatusResponse là một dòng trên dashboard trạng thái phòng
type RoomStatusResponse struct {
	RoomId              uint                `json:"id"`
	RoomNumber          string              `json:"roomNumber"`
	Floor               int                 `json:"floor"`
	RoomClassName       string              `json:"roomClassName"`
	IsAvailable         bool                `json:"isAvailable"`
	Status              int                 `json:"status"`
	StatusLabel         string              `json:"statusLabel"`
	Countdown           string              `json:"countdown,omitempty"` // đến giờ check-in hoặc check-out
	RelevantReservation *ReservationSummary `json:"relevantReservation,omitempty"`
}

// RoomCalendarDay là một ô ngày trên lịch đặt phòng của một phòng
type RoomCalendarDay struct {
	Date   string            `json:"date"`
	Status int               `json:"status"`
	Guest  map[string]string `json:"guest,omitempty"`
}
