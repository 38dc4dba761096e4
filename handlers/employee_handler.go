package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"Sistem-HR-Karyawan/pkg/paseto"
	util "Sistem-HR-Karyawan/pkg/utils"
	"Sistem-HR-Karyawan/repository"

	"Sistem-HR-Karyawan/models"
)

type EmployeeHandler struct {
	employeeRepo *repository.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{employeeRepo: employeeRepo}
}

// GetMe godoc
// @Summary Profil Karyawan
// @Description Mengambil data karyawan yang sedang login
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Employee
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/me [get]
func (h *EmployeeHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, claims.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	employee.Password = ""
	return c.Status(fiber.StatusOK).JSON(employee)
}

// UpdateMe godoc
// @Summary Update Profil
// @Description Mengubah data karyawan yang sedang login
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeUpdatePayload true "Field yang diubah"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/me [put]
func (h *EmployeeHandler) UpdateMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.LastName != "" {
		updateData["last_name"] = payload.LastName
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.Department != "" {
		updateData["department"] = payload.Department
	}
	if payload.Manager != "" {
		updateData["manager"] = payload.Manager
	}
	if payload.JobTitle != "" {
		updateData["job_title"] = payload.JobTitle
	}
	if payload.JobCategory != "" {
		updateData["job_category"] = payload.JobCategory
	}
	if payload.Salary > 0 {
		updateData["salary"] = payload.Salary
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada field yang diubah"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.employeeRepo.UpdateEmployee(ctx, claims.EmployeeID, updateData); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate data karyawan"})
	}

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, claims.EmployeeID)
	if err != nil || employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	employee.Password = ""
	return c.Status(fiber.StatusOK).JSON(employee)
}

// GetAllEmployees godoc
// @Summary Daftar Karyawan
// @Description Mengambil semua karyawan (admin only), password tidak disertakan
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman (default 1)"
// @Param limit query int false "Jumlah per halaman (default 20)"
// @Success 200 {object} models.GetAllEmployeesSuccessResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /admin/employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, total, err := h.employeeRepo.GetAllEmployees(ctx, bson.M{}, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar karyawan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Data karyawan berhasil diambil",
		"employees": employees,
		"total":     total,
	})
}
