package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/response"
	"hotelops/services"
	"hotelops/utils"
	"hotelops/validator"
)

type CleaningController struct {
	service *services.CleaningService
	rdb     *redis.Client
}

func NewCleaningController(service *services.CleaningService, rdb *redis.Client) *CleaningController {
	return &CleaningController{
		service: service,
		rdb:     rdb,
	}
}

// GetCleaningSchedule trả về lịch dọn phòng với bucket độ khẩn cấp.
// Danh sách phòng + hạng phòng được cache 10 phút, bucket tính lại mỗi request.
func (ctrl *CleaningController) GetCleaningSchedule(c *gin.Context) {
	now := time.Now()

	var items []dto.CleaningScheduleItem
	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyCleaningSchedule, &items); err == nil && len(items) > 0 {
			response.Success(c, items)
			return
		}
	}

	items, err := ctrl.service.Schedule(c.Request.Context(), now)
	if err != nil {
		log.Printf("Lỗi khi lấy lịch dọn phòng: %v", err)
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, services.CacheKeyCleaningSchedule, items, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu lịch dọn phòng vào Redis: %v", err)
		}
	}

	response.Success(c, items)
}

// MarkRoomCleaned đánh dấu phòng đã dọn
func (ctrl *CleaningController) MarkRoomCleaned(c *gin.Context) {
	var req dto.MarkCleanedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	cleaningDate, err := parseCleaningDate(req.CleaningDate)
	if err != nil {
		response.BadRequest(c, "Ngày dọn không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy hoặc dd/mm/yyyy hh:mm")
		return
	}

	if err := validator.ValidateCleaningDate(cleaningDate, time.Now()); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := ctrl.service.MarkRoomCleaned(c.Request.Context(), req.RoomID, cleaningDate, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrCleaningInProgress):
			response.Conflict(c, "Phòng đang được dọn, không thể đánh dấu đã dọn")
		default:
			log.Printf("Lỗi khi đánh dấu phòng %d đã dọn: %v", req.RoomID, err)
			response.ServerError(c)
		}
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctrl.rdb)
	utils.LogInfo("Phòng %s đánh dấu đã dọn lúc %s", room.RoomNumber, cleaningDate.Format(dto.DateTimeLayout))
	response.Success(c, room)
}

// UpdateCleaningFrequency cập nhật tần suất dọn của hạng phòng
func (ctrl *CleaningController) UpdateCleaningFrequency(c *gin.Context) {
	var req dto.CleaningFrequencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	err := ctrl.service.UpdateCleaningFrequency(c.Request.Context(), req.RoomClassID, req.CleaningFrequencyDays, req.CleaningDueNotification)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		log.Printf("Lỗi khi cập nhật tần suất dọn hạng phòng %d: %v", req.RoomClassID, err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, ctrl.rdb)
	response.Success(c, gin.H{
		"roomClassId":             req.RoomClassID,
		"cleaningFrequencyDays":   req.CleaningFrequencyDays,
		"cleaningDueNotification": req.CleaningDueNotification,
	})
}

// parseCleaningDate chấp nhận dd/mm/yyyy hh:mm hoặc dd/mm/yyyy
func parseCleaningDate(value string) (time.Time, error) {
	if ts, err := time.Parse(dto.DateTimeLayout, value); err == nil {
		return ts, nil
	}
	return time.Parse(dto.DateLayout, value)
}
