package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-HR-Karyawan/models"
	"Sistem-HR-Karyawan/pkg/paseto"
	"Sistem-HR-Karyawan/pkg/password"
	util "Sistem-HR-Karyawan/pkg/utils"
	"Sistem-HR-Karyawan/repository"
)

type AuthHandler struct {
	employeeRepo *repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
	maker        *paseto.PasetoMaker
}

func NewAuthHandler(employeeRepo *repository.EmployeeRepository, payrollRepo repository.PayrollRepository, maker *paseto.PasetoMaker) *AuthHandler {
	return &AuthHandler{
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		maker:        maker,
	}
}

// Register godoc
// @Summary Register Karyawan
// @Description Mendaftarkan karyawan baru beserta record payroll default bulan berjalan
// @Tags Auth
// @Accept json
// @Produce json
// @Param employee body models.EmployeeRegisterPayload true "Data registrasi karyawan"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body, validation error, atau email sudah terdaftar"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.EmployeeRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newEmployee := &models.Employee{
		Name:        payload.Name,
		LastName:    payload.LastName,
		Email:       payload.Email,
		Password:    hashedPassword,
		Role:        "employee",
		Position:    payload.Position,
		Department:  payload.Department,
		Manager:     payload.Manager,
		JobTitle:    payload.JobTitle,
		JobCategory: payload.JobCategory,
		Salary:      payload.Salary,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.employeeRepo.CreateEmployee(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendaftarkan karyawan: %v", err)})
	}

	// Setiap karyawan baru langsung dapat record payroll default bulan ini.
	defaultPayroll := models.NewDefaultPayroll(newEmployee.ID, payload.Salary, time.Now())
	if _, err := h.payrollRepo.CreatePayroll(ctx, defaultPayroll); err != nil {
		log.Printf("gagal membuat payroll default untuk %s: %v", newEmployee.ID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Karyawan terdaftar tetapi gagal membuat payroll default"})
	}

	token, err := h.maker.GenerateToken(newEmployee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Karyawan berhasil didaftarkan",
		"token":       token,
		"employee_id": result.InsertedID,
	})
}

// Login godoc
// @Summary Login Karyawan
// @Description Melakukan proses login dan mengembalikan token PASETO jika email dan password valid
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.EmployeeLoginPayload true "Kredensial untuk Login"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid atau validation error"
// @Failure 401 {object} models.ErrorResponse "Kombinasi email dan password salah"
// @Failure 403 {object} models.ForbiddenErrorResponse "Akun tidak aktif"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.EmployeeLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByEmail(ctx, payload.Email)
	if err != nil || employee == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	if !employee.Active {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun Anda tidak aktif. Silakan hubungi HR atau Admin."})
	}

	if !password.CheckPasswordHash(payload.Password, employee.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	token, err := h.maker.GenerateToken(employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	employee.Password = ""

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Login berhasil",
		"token":    token,
		"employee": employee,
	})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Mengubah password karyawan yang sedang login
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Data untuk mengubah password"
// @Success 200 {object} models.ChangePasswordSuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi atau password lama tidak cocok"
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, claims.EmployeeID)
	if err != nil || employee == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, employee.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Password lama tidak cocok"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password baru tidak boleh sama dengan password lama."})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal hash password baru"})
	}

	if err := h.employeeRepo.UpdateEmployeePassword(ctx, claims.EmployeeID, newHashedPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password berhasil diubah."})
}

// Logout godoc
// @Summary Logout Karyawan
// @Description Melakukan logout dengan menginformasikan client untuk menghapus token
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LogoutSuccessResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	// Token stateless, tidak bisa dihapus dari server.
	// Logout cukup informasikan agar frontend menghapus token.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout berhasil. Silakan hapus token dari sisi client.",
	})
}
