package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/config"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services"
	"hotelops/validator"
)

// GetCustomers trả về danh sách khách hàng, hỗ trợ tìm kiếm gần đúng theo
// tên/điện thoại/email (bỏ dấu tiếng Việt)
func GetCustomers(c *gin.Context) {
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

	query := c.Query("search")

	var customers []models.Customer
	if err := config.DB.Order("name ASC").Find(&customers).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	if query != "" {
		customers = services.SearchCustomers(query, customers)
	}

	total := len(customers)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, customers[start:end], page, limit, total)
}

// GetCustomerDetail trả về chi tiết một khách hàng kèm lịch sử đặt phòng
func GetCustomerDetail(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	err := config.DB.Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		log.Printf("Lỗi khi lấy chi tiết khách hàng %s: %v", id, err)
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("Room").
		Where("customer_id = ?", customer.ID).
		Order("check_in_date DESC").
		Find(&reservations).Error; err != nil {
		log.Printf("Lỗi khi lấy lịch sử đặt phòng của khách %s: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"customer":     customer,
		"reservations": reservations,
	})
}

// CreateCustomer tạo khách hàng mới
func CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IDNumber: req.IDNumber,
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		log.Printf("Lỗi khi tạo khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}

// UpdateCustomer cập nhật thông tin khách hàng
func UpdateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "ID khách hàng là bắt buộc")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", req.ID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	customer.Name = req.Name
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.IDNumber != "" {
		customer.IDNumber = req.IDNumber
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		log.Printf("Lỗi khi cập nhật khách hàng %d: %v", req.ID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}

// DeleteCustomer xóa khách hàng chưa có đặt phòng nào
func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Model(&models.Reservation{}).Where("customer_id = ?", id).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Khách hàng đã có đặt phòng, không thể xóa")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		log.Printf("Lỗi khi xóa khách hàng %s: %v", id, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}
