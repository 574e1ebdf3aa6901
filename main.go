package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/router"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		utils.ErrorLogger.Fatalf("Invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	sweeper := services.NewSessionSweeper(db, cfg.SessionSweep)
	sweeper.Start()
	defer sweeper.Stop()

	r := router.SetupRouter(db, cfg)
	if err := r.SetTrustedProxies(nil); err != nil {
		utils.ErrorLogger.Fatal(err)
	}

	utils.InfoLogger.Printf("Listening on port %s (driver=%s)", cfg.Port, cfg.DBDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
