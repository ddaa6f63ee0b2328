package main

import (
	"log"

	"gymtrack-backend/config"
	"gymtrack-backend/internal/api"
	"gymtrack-backend/internal/database"
	"gymtrack-backend/internal/models"
	"gymtrack-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @title gymtrack-backend API
// @version 1.0
// @description Gym membership, attendance and payment management API.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := database.ConnectRedis(cfg); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Member{}, &models.Attendance{}, &models.Payment{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seedAdminUser(db, cfg)

	router := api.NewRouter(db, database.RedisClient)
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// seedAdminUser creates the initial admin account when no user with the
// configured username exists. Skipped when ADMIN_PASSWORD is unset.
func seedAdminUser(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.User
	result := db.Where("username = ?", cfg.AdminUsername).First(&admin)
	if result.Error == nil {
		log.Println("Admin user already exists.")
		return
	}
	if result.Error != gorm.ErrRecordNotFound {
		log.Fatalf("failed to check for admin user: %v", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin = models.User{
		Name:     cfg.AdminName,
		Username: cfg.AdminUsername,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Println("Admin user created successfully!")
}
