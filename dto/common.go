package dto

import "hotelops/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// DateLayout là định dạng ngày dùng trong request/response
const DateLayout = "02/01/2006"

// DateTimeLayout là định dạng ngày giờ dùng trong request/response
const DateTimeLayout = "02/01/2006 15:04"
