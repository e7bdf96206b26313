package dto

import "time"

// ReservationRequest là DTO cho request tạo đặt phòng
type ReservationRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CustomerID   *uint  `json:"customerId"`
	CheckInDate  string `json:"checkInDate" binding:"required"`  // 02/01/2006 15:04
	CheckOutDate string `json:"checkOutDate" binding:"required"` // 02/01/2006 15:04
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ReservationStatusRequest là DTO cho request đổi trạng thái đặt phòng
type ReservationStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// CheckoutItem là một dòng trên màn hình trả phòng: khách đang ở và thời gian còn lại
type CheckoutItem struct {
	ReservationID uint      `json:"reservationId"`
	RoomID        uint      `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	GuestName     string    `json:"guestName"`
	GuestPhone    string    `json:"guestPhone"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Remaining     string    `json:"remaining"` // "2d 5h", "04:30" hoặc "Quá hạn"
}
