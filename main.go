package main

import (
	"log"
	"os"

	"go-sparepart-pqt/config"
	"go-sparepart-pqt/controllers"
	"go-sparepart-pqt/models"
	"go-sparepart-pqt/routes"
	"go-sparepart-pqt/service"

	"github.com/gin-gonic/gin"
)

func main() {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Gagal konek ke database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Sparepart{},
		&models.PhysicalQuantity{},
		&models.StockUsage{},
		&models.StockAdjustment{},
		&models.StockMovement{},
	); err != nil {
		log.Fatalf("Gagal migrasi: %v", err)
	}

	config.SeedSpareparts(db)
	config.SeedUsers(db)

	svc := service.NewService(db)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Controllers{
		Auth:       controllers.NewAuthController(db),
		Withdrawal: controllers.NewWithdrawalController(svc),
		PQT:        controllers.NewPQTController(svc),
		Snapshot:   controllers.NewSnapshotController(svc),
		Sparepart:  controllers.NewSparepartController(db),
		History:    controllers.NewHistoryController(db),
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Sparepart PQT API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
