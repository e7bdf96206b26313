package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/models"
	"hotelops/response"
)

// GetRoomClasses trả về danh sách hạng phòng kèm số phòng mỗi hạng
func GetRoomClasses(c *gin.Context) {
	var classes []models.RoomClass
	if err := config.DB.Order("name ASC").Find(&classes).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách hạng phòng: %v", err)
		response.ServerError(c)
		return
	}

	type classWithCount struct {
		models.RoomClass
		RoomCount int64 `json:"roomCount"`
	}

	result := make([]classWithCount, 0, len(classes))
	for _, class := range classes {
		var count int64
		if err := config.DB.Model(&models.Room{}).Where("room_class_id = ?", class.ID).Count(&count).Error; err != nil {
			response.ServerError(c)
			return
		}
		result = append(result, classWithCount{RoomClass: class, RoomCount: count})
	}

	response.Success(c, result)
}

// CreateRoomClass tạo hạng phòng mới
func CreateRoomClass(c *gin.Context) {
	var req struct {
		Name                    string `json:"name" binding:"required"`
		BasePrice               int    `json:"basePrice"`
		CleaningFrequencyDays   int    `json:"cleaningFrequencyDays" binding:"required"`
		CleaningDueNotification bool   `json:"cleaningDueNotification"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	if req.CleaningFrequencyDays <= 0 {
		response.ValidationError(c, "Tần suất dọn phải lớn hơn 0")
		return
	}

	class := models.RoomClass{
		Name:                    req.Name,
		BasePrice:               req.BasePrice,
		CleaningFrequencyDays:   req.CleaningFrequencyDays,
		CleaningDueNotification: req.CleaningDueNotification,
	}

	if err := config.DB.Create(&class).Error; err != nil {
		log.Printf("Lỗi khi tạo hạng phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, class)
}

// GetRoomClassDetail trả về chi tiết một hạng phòng
func GetRoomClassDetail(c *gin.Context) {
	id := c.Param("id")

	var class models.RoomClass
	err := config.DB.Where("id = ?", id).First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		log.Printf("Lỗi khi lấy chi tiết hạng phòng %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, class)
}
