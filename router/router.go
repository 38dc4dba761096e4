package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-HR-Karyawan/config"
	"Sistem-HR-Karyawan/config/middleware"
	_ "Sistem-HR-Karyawan/docs"
	"Sistem-HR-Karyawan/handlers"
	"Sistem-HR-Karyawan/pkg/paseto"
	"Sistem-HR-Karyawan/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	maker, err := paseto.NewPasetoMaker(cfg.PASETO_SECRET)
	if err != nil {
		log.Fatalf("Gagal menginisialisasi token maker: %v", err)
	}

	loc := cfg.Location()

	// Inisialisasi Repositories
	employeeRepo := repository.NewEmployeeRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	payrollRepo := repository.NewPayrollRepository()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(employeeRepo, payrollRepo, maker)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, loc)
	payrollHandler := handlers.NewPayrollHandler(payrollRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem HR Karyawan API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(maker), authHandler.Logout)

	// Employee routes
	employeeGroup := api.Group("/employees", middleware.AuthMiddleware(maker))
	employeeGroup.Get("/me", employeeHandler.GetMe)
	employeeGroup.Put("/me", employeeHandler.UpdateMe)
	employeeGroup.Post("/change-password", authHandler.ChangePassword)

	// Attendance routes
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware(maker))
	attendanceGroup.Post("/clock-in", attendanceHandler.ClockIn)
	attendanceGroup.Patch("/clock-out/:id", attendanceHandler.ClockOut)
	attendanceGroup.Get("/logs", attendanceHandler.GetLogs)

	// Payroll routes
	payrollGroup := api.Group("/payrolls", middleware.AuthMiddleware(maker))
	payrollGroup.Get("/me", payrollHandler.GetMyPayroll)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(maker), middleware.AdminMiddleware())
	adminGroup.Get("/employees", employeeHandler.GetAllEmployees)
	adminGroup.Get("/payrolls", payrollHandler.GetAllPayrolls)
	adminGroup.Put("/payrolls/:id", payrollHandler.UpdatePayroll)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/register")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/logout (protected)")
	log.Println("- GET /api/v1/employees/me (protected)")
	log.Println("- PUT /api/v1/employees/me (protected)")
	log.Println("- POST /api/v1/employees/change-password (protected)")
	log.Println("- POST /api/v1/attendance/clock-in (protected)")
	log.Println("- PATCH /api/v1/attendance/clock-out/:id (protected)")
	log.Println("- GET /api/v1/attendance/logs (protected)")
	log.Println("- GET /api/v1/payrolls/me (protected)")
	log.Println("- GET /api/v1/admin/employees (admin only)")
	log.Println("- GET /api/v1/admin/payrolls (admin only)")
	log.Println("- PUT /api/v1/admin/payrolls/:id (admin only)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
