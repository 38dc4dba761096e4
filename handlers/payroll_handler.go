package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Karyawan/models"
	"Sistem-HR-Karyawan/pkg/paseto"
	util "Sistem-HR-Karyawan/pkg/utils"
	"Sistem-HR-Karyawan/repository"
)

type PayrollHandler struct {
	payrollRepo repository.PayrollRepository
}

func NewPayrollHandler(payrollRepo repository.PayrollRepository) *PayrollHandler {
	return &PayrollHandler{payrollRepo: payrollRepo}
}

// GetMyPayroll godoc
// @Summary Payroll Saya
// @Description Mengambil record payroll terbaru milik karyawan yang sedang login
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Payroll
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /payrolls/me [get]
func (h *PayrollHandler) GetMyPayroll(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payroll, err := h.payrollRepo.FindLatestByEmployee(ctx, claims.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrPayrollNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record payroll tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(payroll)
}

// GetAllPayrolls godoc
// @Summary Daftar Payroll
// @Description Mengambil semua record payroll (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman (default 1)"
// @Param limit query int false "Jumlah per halaman (default 20)"
// @Success 200 {object} object{message=string,payrolls=[]models.Payroll,total=int}
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /admin/payrolls [get]
func (h *PayrollHandler) GetAllPayrolls(c *fiber.Ctx) error {
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

	payrolls, total, err := h.payrollRepo.GetAllPayrolls(ctx, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Data payroll berhasil diambil",
		"payrolls": payrolls,
		"total":    total,
	})
}

// UpdatePayroll godoc
// @Summary Update Payroll
// @Description Mengubah komponen earnings/deductions/status sebuah record payroll (admin only). CTC dan gaji bersih dihitung ulang dari komponen.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID record payroll"
// @Param payroll body models.PayrollUpdatePayload true "Field yang diubah"
// @Success 200 {object} models.Payroll
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/payrolls/{id} [put]
func (h *PayrollHandler) UpdatePayroll(c *fiber.Ctx) error {
	payrollID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID payroll tidak valid"})
	}

	var payload models.PayrollUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	current, err := h.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, repository.ErrPayrollNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record payroll tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencari payroll"})
	}

	earnings := current.Earnings
	deductions := current.Deductions
	if payload.Earnings != nil {
		earnings = *payload.Earnings
	}
	if payload.Deductions != nil {
		deductions = *payload.Deductions
	}

	updateData := bson.M{
		"earnings":       earnings,
		"deductions":     deductions,
		"ctc":            earnings.Total(),
		"in_hand_salary": earnings.Total() - deductions.Total(),
	}
	if payload.Status != "" {
		updateData["status"] = payload.Status
	}

	updated, err := h.payrollRepo.UpdatePayroll(ctx, payrollID, updateData)
	if err != nil {
		if errors.Is(err, repository.ErrPayrollNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record payroll tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate payroll"})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
