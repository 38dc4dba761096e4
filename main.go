package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-HR-Karyawan/config"
	_ "Sistem-HR-Karyawan/docs" // Import docs untuk swagger
	"Sistem-HR-Karyawan/repository"
	"Sistem-HR-Karyawan/router"
	"Sistem-HR-Karyawan/seeder"
	_ "time/tzdata"
)

// @title Sistem HR Karyawan API
// @version 1.0
// @description API untuk operasional HR: autentikasi karyawan, absensi clock-in/clock-out, dan payroll
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Employees
// @tag.description Employee profile endpoints
//
// @tag.name Attendance
// @tag.description Attendance clock-in/clock-out and report endpoints
//
// @tag.name Payroll
// @tag.description Payroll endpoints
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if os.Getenv("SEED_ADMIN") == "true" {
		seeder.SeedAdmin(repository.NewEmployeeRepository())
	}

	app := fiber.New()

	// Setup CORS menggunakan konfigurasi dari cors.go
	config.SetupCORS(app)

	app.Use(logger.New())

	// Setup routes (termasuk Swagger di dalamnya)
	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
