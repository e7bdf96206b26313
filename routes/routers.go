package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelops/controllers"
	middlewares "hotelops/middleware"
	"hotelops/services"
	"hotelops/services/logger"
	"hotelops/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler())

	cleaningService := services.NewCleaningService(services.CleaningServiceOptions{
		Repo:     services.NewGormCleaningRepository(db),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})
	cleaningController := controllers.NewCleaningController(cleaningService, redisCli)
	notificationController := controllers.NewNotificationController(m)

	v1 := router.Group("/api/v1")

	v1.GET("/room", controllers.GetAllRooms)
	v1.POST("/room", controllers.CreateRoom)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", controllers.UpdateRoom)
	v1.PUT("/roomAvailability", controllers.ChangeRoomAvailability)
	v1.GET("/roomStatus", controllers.GetRoomStatus)
	v1.GET("/checkRoom", controllers.GetRoomCalendar)

	v1.GET("/roomClass", controllers.GetRoomClasses)
	v1.POST("/roomClass", controllers.CreateRoomClass)
	v1.GET("/roomClass/:id", controllers.GetRoomClassDetail)

	v1.GET("/cleaningSchedule", cleaningController.GetCleaningSchedule)
	v1.POST("/roomCleaned", cleaningController.MarkRoomCleaned)
	v1.PUT("/cleaningFrequency", cleaningController.UpdateCleaningFrequency)

	v1.GET("/reservation", controllers.GetReservations)
	v1.POST("/reservation", controllers.CreateReservation)
	v1.GET("/reservation/:id", controllers.GetReservationDetail)
	v1.PUT("/reservationStatus", controllers.ChangeReservationStatus)
	v1.GET("/checkout", controllers.GetCheckouts)

	v1.GET("/customer", controllers.GetCustomers)
	v1.POST("/customer", controllers.CreateCustomer)
	v1.GET("/customer/:id", controllers.GetCustomerDetail)
	v1.PUT("/customerUpdate", controllers.UpdateCustomer)
	v1.DELETE("/customer/:id", controllers.DeleteCustomer)

	v1.GET("/tables", controllers.GetTables)
	v1.POST("/tables", controllers.CreateTable)
	v1.PUT("/tableStatus", controllers.ChangeTableStatus)

	v1.GET("/kot", controllers.GetKitchenOrders)
	v1.POST("/kot", controllers.CreateKitchenOrder)
	v1.PUT("/kotStatus", controllers.ChangeKitchenOrderStatus)

	v1.GET("/notifications", notificationController.GetAllNotifications)
	v1.POST("/notifications/broadcast", notificationController.Broadcast)
}
