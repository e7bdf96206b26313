package builders

import (
	"time"

	"hotelops/constants"
	"hotelops/models"
)

// ReservationBuilder giúp tạo đặt phòng theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status: constants.ReservationStatusPending,
		},
	}
}

// WithRoom thêm phòng được đặt
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithCustomer thêm khách hàng đã có hồ sơ
func (b *ReservationBuilder) WithCustomer(customerID uint) *ReservationBuilder {
	b.reservation.CustomerID = &customerID
	return b
}

// WithGuest thêm thông tin khách vãng lai
func (b *ReservationBuilder) WithGuest(name, phone, email string) *ReservationBuilder {
	b.reservation.GuestName = name
	b.reservation.GuestPhone = phone
	b.reservation.GuestEmail = email
	return b
}

// WithDates thêm ngày nhận và trả phòng
func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	b.reservation.CheckOutDate = checkOut
	return b
}

// WithNotes thêm ghi chú
func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.reservation.Notes = notes
	return b
}

// Build trả về reservation đã dựng
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
