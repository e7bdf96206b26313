package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/services/housekeeping"
	"hotelops/validator"
)

// Các trạng thái đặt phòng còn hiệu lực cho việc suy ra trạng thái phòng
var activeReservationStatuses = []int{constants.ReservationStatusPending, constants.ReservationStatusConfirmed}

// getRoomsWithReservations lấy danh sách phòng kèm đặt phòng còn hiệu lực,
// ưu tiên cache Redis, hết hạn 60 phút
func getRoomsWithReservations() ([]models.Room, error) {
	var rooms []models.Room

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, services.CacheKeyRoomStatuses, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	err := config.DB.
		Preload("RoomClass").
		Preload("Reservations", "status IN ?", activeReservationStatuses).
		Order("floor ASC, room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, services.CacheKeyRoomStatuses, rooms, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu dữ liệu phòng vào Redis: %v", err)
		}
	}

	return rooms, nil
}

// GetRoomStatus trả về dashboard trạng thái phòng: trạng thái suy ra từ đặt
// phòng tại thời điểm hiện tại, kèm đặt phòng liên quan và thời gian còn lại
func GetRoomStatus(c *gin.Context) {
	rooms, err := getRoomsWithReservations()
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách phòng: %v", err)
		response.ServerError(c)
		return
	}

	now := time.Now()
	statuses := make([]dto.RoomStatusResponse, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		status, relevant := housekeeping.ResolveRoomStatus(room, now)

		item := dto.RoomStatusResponse{
			RoomId:        room.RoomId,
			RoomNumber:    room.RoomNumber,
			Floor:         room.Floor,
			RoomClassName: room.RoomClass.Name,
			IsAvailable:   room.IsAvailable,
			Status:        status,
			StatusLabel:   housekeeping.StatusLabel(status),
		}

		if relevant != nil {
			item.RelevantReservation = &dto.ReservationSummary{
				ID:           relevant.ID,
				GuestName:    relevant.GuestName,
				GuestPhone:   relevant.GuestPhone,
				CheckInDate:  relevant.CheckInDate,
				CheckOutDate: relevant.CheckOutDate,
			}
			switch status {
			case constants.RoomStatusCheckIn:
				item.Countdown = housekeeping.FormatRemaining(relevant.CheckOutDate, now)
			case constants.RoomStatusBooked:
				item.Countdown = housekeeping.FormatRemaining(relevant.CheckInDate, now)
			}
		}

		statuses = append(statuses, item)
	}

	response.Success(c, statuses)
}

// GetAllRooms trả về danh sách phòng có phân trang và filter
func GetAllRooms(c *gin.Context) {
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

	query := config.DB.Model(&models.Room{}).Preload("RoomClass")

	if floorStr := c.Query("floor"); floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			query = query.Where("floor = ?", floor)
		}
	}
	if classStr := c.Query("roomClassId"); classStr != "" {
		if classID, err := strconv.Atoi(classStr); err == nil {
			query = query.Where("room_class_id = ?", classID)
		}
	}
	if availStr := c.Query("isAvailable"); availStr != "" {
		if avail, err := strconv.ParseBool(availStr); err == nil {
			query = query.Where("is_available = ?", avail)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Lỗi khi đếm số phòng: %v", err)
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := query.Offset(page * limit).Limit(limit).
		Order("floor ASC, room_number ASC").
		Find(&rooms).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, rooms, page, limit, int(total))
}

// GetRoomDetail trả về chi tiết một phòng kèm hạng phòng và đặt phòng hiệu lực
func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	err := config.DB.
		Preload("RoomClass").
		Preload("Reservations", "status IN ?", activeReservationStatuses).
		Where("room_id = ?", roomID).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		log.Printf("Lỗi khi lấy chi tiết phòng %s: %v", roomID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomClassID: req.RoomClassID,
		Floor:       req.Floor,
		Description: req.Description,
		IsAvailable: true,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Số phòng đã tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		log.Printf("Lỗi khi tạo phòng: %v", err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, room)
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", req.RoomId).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.RoomNumber != "" {
		room.RoomNumber = req.RoomNumber
	}
	if req.RoomClassID != 0 {
		room.RoomClassID = req.RoomClassID
	}
	if req.Floor != 0 {
		room.Floor = req.Floor
	}
	if req.Description != "" {
		room.Description = req.Description
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("Lỗi khi cập nhật phòng %d: %v", req.RoomId, err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, room)
}

// ChangeRoomAvailability khóa hoặc mở phòng để bảo trì
func ChangeRoomAvailability(c *gin.Context) {
	var req dto.RoomAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	result := config.DB.Model(&models.Room{}).
		Where("room_id = ?", req.RoomId).
		Update("is_available", *req.IsAvailable)
	if result.Error != nil {
		log.Printf("Lỗi khi đổi trạng thái phòng %d: %v", req.RoomId, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, config.RedisClient)
	response.Success(c, gin.H{"id": req.RoomId, "isAvailable": *req.IsAvailable})
}

// GetRoomCalendar trả về lưới ngày trong tháng với trạng thái đặt phòng của một phòng
func GetRoomCalendar(c *gin.Context) {
	roomID := c.DefaultQuery("id", "")
	date := c.DefaultQuery("date", "")

	if roomID == "" || date == "" {
		response.BadRequest(c, "id và date là bắt buộc")
		return
	}

	layout := "01/2006"
	parsedDate, err := time.Parse(layout, date)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng mm/yyyy")
		return
	}

	// Tính toán ngày đầu tháng và ngày cuối tháng
	firstDay := time.Date(parsedDate.Year(), parsedDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var reservations []models.Reservation
	err = config.DB.
		Where("room_id = ? AND status IN ?", roomID, activeReservationStatuses).
		Where("check_out_date >= ? AND check_in_date <= ?", firstDay, lastDay.AddDate(0, 0, 1)).
		Find(&reservations).Error
	if err != nil {
		log.Printf("Lỗi khi lấy đặt phòng của phòng %s: %v", roomID, err)
		response.ServerError(c)
		return
	}

	var days []dto.RoomCalendarDay
	for day := firstDay; day.Before(lastDay.AddDate(0, 0, 1)); day = day.AddDate(0, 0, 1) {
		entry := dto.RoomCalendarDay{
			Date:   day.Format(dto.DateLayout),
			Status: constants.RoomStatusAvailable,
		}

		for i := range reservations {
			res := &reservations[i]
			if day.After(res.CheckInDate.AddDate(0, 0, -1)) && !day.After(res.CheckOutDate) {
				entry.Status = constants.RoomStatusBooked
				// Chỉ hiện khách đầu tiên của ngày đó
				if entry.Guest == nil {
					entry.Guest = map[string]string{
						"guest_name":  res.GuestName,
						"guest_phone": res.GuestPhone,
					}
				}
				break
			}
		}

		days = append(days, entry)
	}

	response.Success(c, days)
}
