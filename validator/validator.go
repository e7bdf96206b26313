package validator

import (
	"regexp"
	"time"

	"hotelops/errors"
	"hotelops/models"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^[0-9]{10}$`)
	roomNumberRegex = regexp.MustCompile(`^[A-Za-z]?[0-9]{2,4}$`)
)

// ValidateCustomer validate thông tin khách hàng
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}

	if customer.Email != "" && !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if customer.Phone != "" && !isValidPhone(customer.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateReservation validate thông tin đặt phòng
func ValidateReservation(res *models.Reservation) error {
	if res.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if res.CheckInDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng không được để trống", nil)
	}

	if res.CheckOutDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày trả phòng không được để trống", nil)
	}

	if !res.CheckOutDate.After(res.CheckInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if res.CustomerID == nil {
		if res.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if res.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(res.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if res.GuestEmail != "" && !isValidEmail(res.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}

	if !IsValidRoomNumber(room.RoomNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số phòng không hợp lệ: "+room.RoomNumber, nil)
	}

	if room.RoomClassID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hạng phòng không được để trống", nil)
	}

	return nil
}

// ValidateCleaningDate validate ngày dọn phòng: không được ở tương lai
func ValidateCleaningDate(cleaningDate, now time.Time) error {
	if cleaningDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày dọn phòng không được để trống", nil)
	}

	if cleaningDate.After(now) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày dọn phòng không được ở tương lai", nil)
	}

	return nil
}

// IsValidRoomNumber kiểm tra định dạng số phòng (vd: 101, A203)
func IsValidRoomNumber(roomNumber string) bool {
	return roomNumberRegex.MatchString(roomNumber)
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
