package middleware

import (
	"github.com/gin-gonic/gin"

	"hotelops/errors"
	"hotelops/response"
)

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
