package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/builders"
	"hotelops/config"
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/services/housekeeping"
	"hotelops/validator"
)

// GetReservations trả về danh sách đặt phòng có phân trang và filter
func GetReservations(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	query := config.DB.Model(&models.Reservation{}).Preload("Room").Preload("Customer")

	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			query = query.Where("status = ?", status)
		}
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if from, err := time.Parse(dto.DateLayout, fromStr); err == nil {
			query = query.Where("check_out_date >= ?", from)
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if to, err := time.Parse(dto.DateLayout, toStr); err == nil {
			query = query.Where("check_in_date <= ?", to.AddDate(0, 0, 1))
		}
	}
	if roomStr := c.Query("roomId"); roomStr != "" {
		if roomID, err := strconv.Atoi(roomStr); err == nil {
			query = query.Where("room_id = ?", roomID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Lỗi khi đếm đặt phòng: %v", err)
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := query.Offset(page * limit).Limit(limit).
		Order("check_in_date DESC").
		Find(&reservations).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách đặt phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, reservations, page, limit, int(total))
}

// GetReservationDetail trả về chi tiết một đặt phòng
func GetReservationDetail(c *gin.Context) {
	id := c.Param("id")

	var reservation models.Reservation
	err := config.DB.Preload("Room").Preload("Customer").Where("id = ?", id).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		log.Printf("Lỗi khi lấy chi tiết đặt phòng %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, reservation)
}

// CreateReservation tạo đặt phòng mới, từ chối khi trùng khoảng ngày với
// đặt phòng còn hiệu lực của cùng phòng
func CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	checkIn, err := parseReservationDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOut, err := parseReservationDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	builder := builders.NewReservationBuilder().
		WithRoom(req.RoomID).
		WithDates(checkIn, checkOut).
		WithGuest(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithNotes(req.Notes)
	if req.CustomerID != nil {
		builder = builder.WithCustomer(*req.CustomerID)
	}
	reservation := builder.Build()

	if err := validator.ValidateReservation(reservation); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", req.RoomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	// Chặn đặt trùng khoảng ngày ngay tại ingress, tránh dữ liệu hai khách
	// cùng ở một phòng
	var overlapping int64
	err = config.DB.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", req.RoomID, activeReservationStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&overlapping).Error
	if err != nil {
		log.Printf("Lỗi khi kiểm tra trùng đặt phòng: %v", err)
		response.ServerError(c)
		return
	}
	if overlapping > 0 {
		response.Conflict(c, "Phòng đã có đặt phòng trong khoảng ngày này")
		return
	}

	if err := config.DB.Create(reservation).Error; err != nil {
		log.Printf("Lỗi khi tạo đặt phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, reservation)
}

// ChangeReservationStatus đổi trạng thái đặt phòng
func ChangeReservationStatus(c *gin.Context) {
	var req dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var reservation models.Reservation
	if err := config.DB.Where("id = ?", req.ID).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := applyReservationTransition(&reservation, req.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		log.Printf("Lỗi khi cập nhật trạng thái đặt phòng %d: %v", req.ID, err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, reservation)
}

// applyReservationTransition kiểm tra và áp dụng chuyển trạng thái hợp lệ
func applyReservationTransition(reservation *models.Reservation, newStatus int) error {
	switch reservation.Status {
	case constants.ReservationStatusPending:
		if newStatus == constants.ReservationStatusConfirmed || newStatus == constants.ReservationStatusCancelled {
			reservation.Status = newStatus
			return nil
		}
	case constants.ReservationStatusConfirmed:
		if newStatus == constants.ReservationStatusCompleted || newStatus == constants.ReservationStatusCancelled {
			reservation.Status = newStatus
			return nil
		}
	}
	return errors.New("chuyển trạng thái không hợp lệ")
}

// GetCheckouts trả về danh sách khách đang ở kèm thời gian còn lại đến giờ trả phòng
func GetCheckouts(c *gin.Context) {
	now := time.Now()

	var reservations []models.Reservation
	err := config.DB.Preload("Room").
		Where("status IN ?", activeReservationStatuses).
		Where("check_in_date <= ? AND check_out_date >= ?", now, now).
		Order("check_out_date ASC").
		Find(&reservations).Error
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách trả phòng: %v", err)
		response.ServerError(c)
		return
	}

	items := make([]dto.CheckoutItem, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]
		item := dto.CheckoutItem{
			ReservationID: res.ID,
			RoomID:        res.RoomID,
			GuestName:     res.GuestName,
			GuestPhone:    res.GuestPhone,
			CheckOutDate:  res.CheckOutDate,
			Remaining:     housekeeping.FormatRemaining(res.CheckOutDate, now),
		}
		if res.Room != nil {
			item.RoomNumber = res.Room.RoomNumber
		}
		items = append(items, item)
	}

	response.Success(c, items)
}

// parseReservationDate chấp nhận dd/mm/yyyy hh:mm hoặc dd/mm/yyyy
func parseReservationDate(value string) (time.Time, error) {
	if ts, err := time.Parse(dto.DateTimeLayout, value); err == nil {
		return ts, nil
	}
	return time.Parse(dto.DateLayout, value)
}
