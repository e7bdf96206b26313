package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/models"
	"hotelops/response"
)

// GetTables trả về danh sách bàn nhà hàng
func GetTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Order("table_number ASC").Find(&tables).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách bàn: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, tables)
}

// CreateTable tạo bàn mới
func CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"tableNumber" binding:"required"`
		Capacity    int    `json:"capacity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	table := models.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      constants.TableStatusFree,
	}

	if err := config.DB.Create(&table).Error; err != nil {
		log.Printf("Lỗi khi tạo bàn: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, table)
}

// ChangeTableStatus đổi trạng thái bàn (trống / có khách / đã đặt)
func ChangeTableStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	if req.Status < constants.TableStatusFree || req.Status > constants.TableStatusReserved {
		response.ValidationError(c, "Trạng thái bàn không hợp lệ")
		return
	}

	result := config.DB.Model(&models.Table{}).Where("id = ?", req.ID).Update("status", req.Status)
	if result.Error != nil {
		log.Printf("Lỗi khi đổi trạng thái bàn %d: %v", req.ID, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"id": req.ID, "status": req.Status})
}

// GetKitchenOrders trả về danh sách phiếu bếp, filter theo trạng thái
func GetKitchenOrders(c *gin.Context) {
	query := config.DB.Model(&models.KitchenOrder{}).Preload("Table")

	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			query = query.Where("status = ?", status)
		}
	}

	var orders []models.KitchenOrder
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách phiếu bếp: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, orders)
}

// CreateKitchenOrder tạo phiếu bếp mới cho một bàn
func CreateKitchenOrder(c *gin.Context) {
	var req models.KitchenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var table models.Table
	if err := config.DB.Where("id = ?", req.TableID).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	order := models.KitchenOrder{
		TableID: req.TableID,
		Items:   req.Items,
		Notes:   req.Notes,
		Status:  models.KitchenOrderStatusPending,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		log.Printf("Lỗi khi tạo phiếu bếp: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, order)
}

// ChangeKitchenOrderStatus chuyển trạng thái phiếu bếp theo state machine
func ChangeKitchenOrderStatus(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id" binding:"required"`
		Action string `json:"action" binding:"required"` // prepare | serve | cancel
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var order models.KitchenOrder
	if err := config.DB.Where("id = ?", req.ID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	state := models.GetKitchenOrderState(order.Status)
	var err error
	switch req.Action {
	case "prepare":
		err = state.StartPreparing(&order)
	case "serve":
		err = state.Serve(&order)
	case "cancel":
		err = state.Cancel(&order)
	default:
		response.BadRequest(c, "Hành động không hợp lệ, chỉ chấp nhận prepare/serve/cancel")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&order).Error; err != nil {
		log.Printf("Lỗi khi cập nhật phiếu bếp %d: %v", req.ID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, order)
}
