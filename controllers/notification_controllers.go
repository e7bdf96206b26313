package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"hotelops/config"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services/notification"
	"hotelops/utils"
)

type NotificationController struct {
	melody *melody.Melody
}

func NewNotificationController(m *melody.Melody) *NotificationController {
	return &NotificationController{melody: m}
}

// GetAllNotifications trả về feed thông báo, mới nhất trước
func (ctrl *NotificationController) GetAllNotifications(c *gin.Context) {
	page := 0
	limit := 20
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

	var total int64
	if err := config.DB.Model(&models.Notification{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := config.DB.Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&notifications).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách thông báo: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, notifications, page, limit, int(total))
}

// Broadcast gửi một thông báo thủ công đến mọi client đang kết nối
func (ctrl *NotificationController) Broadcast(c *gin.Context) {
	var req struct {
		Message     string `json:"message" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tin nhắn là bắt buộc")
		return
	}

	record := models.Notification{
		Message:     req.Message,
		Description: req.Description,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		log.Printf("Lỗi khi lưu thông báo: %v", err)
		response.ServerError(c)
		return
	}

	notificationService := notification.NewMelodyService(ctrl.melody)
	if err := notificationService.SendMessage(req.Message); err != nil {
		log.Printf("Lỗi khi broadcast thông báo: %v", err)
		response.ServerError(c)
		return
	}

	utils.LogInfo("Broadcast thông báo: %s", req.Message)
	response.Success(c, record)
}
