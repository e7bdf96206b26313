package dto

// CustomerRequest là DTO cho request tạo/cập nhật khách hàng
type CustomerRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
}
