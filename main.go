package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelops/config"
	"hotelops/jobs"
	"hotelops/models"
	"hotelops/routes"
	"hotelops/services"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.RoomClass{},
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
		&models.CleaningLog{},
		&models.Notification{},
		&models.Table{},
		&models.KitchenOrder{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	jobs.SetCleaningDueNotifier(services.NewCleaningNotifierAdapter())
	jobs.SetRoomCacheRefresher(services.NewCacheRefresherAdapter())

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
