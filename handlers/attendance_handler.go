package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Karyawan/models"
	"Sistem-HR-Karyawan/pkg/paseto"
	util "Sistem-HR-Karyawan/pkg/utils"
	"Sistem-HR-Karyawan/pkg/worktime"
	"Sistem-HR-Karyawan/repository"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
	loc  *time.Location

	// diganti di test untuk mengontrol "sekarang"
	nowFn func() time.Time
}

func NewAttendanceHandler(repo repository.AttendanceRepository, loc *time.Location) *AttendanceHandler {
	return &AttendanceHandler{
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}
}

// ClockIn godoc
// @Summary Clock In
// @Description Membuka sesi absensi baru (maksimal 3 sesi per hari, tidak boleh ada sesi yang masih terbuka)
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ClockInPayload false "Lokasi kerja (office / work_from_home)"
// @Success 201 {object} models.TimeRecord "Sesi berhasil dibuka"
// @Failure 400 {object} models.ErrorResponse "Sesi terbuka masih ada atau batas harian tercapai"
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	// Body boleh kosong; default lokasi kerja office.
	payload := models.ClockInPayload{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
		}
		if errs := util.ValidateStruct(payload); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
		}
	}
	if payload.WorkLocation == "" {
		payload.WorkLocation = models.WorkLocationOffice
	}

	now := h.nowFn().In(h.loc)
	startOfDay, endOfDay := worktime.DayWindow(now, h.loc)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	openSession, err := h.repo.FindOpenSession(ctx, claims.EmployeeID, startOfDay, endOfDay)
	if err != nil {
		log.Printf("gagal cek sesi terbuka: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa sesi absensi"})
	}
	if openSession != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda harus clock-out dulu sebelum memulai sesi baru."})
	}

	todayCount, err := h.repo.CountSessionsInWindow(ctx, claims.EmployeeID, startOfDay, endOfDay)
	if err != nil {
		log.Printf("gagal hitung sesi hari ini: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa sesi absensi"})
	}
	if todayCount >= models.MaxClockInSessionsPerDay {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Maksimal 3 sesi clock-in untuk hari ini sudah tercapai"})
	}

	record := &models.TimeRecord{
		ID:           primitive.NewObjectID(),
		EmployeeID:   claims.EmployeeID,
		Date:         startOfDay,
		ClockIn:      now,
		ClockOut:     nil,
		WorkLocation: payload.WorkLocation,
		Status:       models.AttendanceStatusPresent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.repo.CreateTimeRecord(ctx, record); err != nil {
		// Insert kalah balapan dengan clock-in lain milik karyawan yang sama.
		if errors.Is(err, repository.ErrOpenSessionExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda harus clock-out dulu sebelum memulai sesi baru."})
		}
		log.Printf("gagal menyimpan sesi absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan sesi absensi"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// ClockOut godoc
// @Summary Clock Out
// @Description Menutup sesi absensi dan menghitung jam kerja turunan
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID sesi absensi"
// @Success 200 {object} models.TimeRecord "Sesi berhasil ditutup"
// @Failure 400 {object} models.ErrorResponse "Sesi sudah ditutup atau waktu tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/clock-out/{id} [patch]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	recordID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID sesi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	record, err := h.repo.FindByIDAndEmployee(ctx, recordID, claims.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan absensi tidak ditemukan"})
		}
		log.Printf("gagal mencari catatan absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencari catatan absensi"})
	}

	if !record.IsOpen() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sesi ini sudah di-clock-out."})
	}

	now := h.nowFn().In(h.loc)
	clockIn := record.ClockIn.In(h.loc)

	// Durasi negatif tidak pernah dihitung; tolak di batas operasi.
	if now.Before(clockIn) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Waktu clock-out tidak boleh sebelum waktu clock-in"})
	}

	derived := worktime.Derive(clockIn, now)

	updated, err := h.repo.CloseTimeRecord(ctx, record.ID, now, derived)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyClosed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sesi ini sudah di-clock-out."})
		}
		log.Printf("gagal menutup sesi absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menutup sesi absensi"})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// GetLogs godoc
// @Summary Attendance Logs
// @Description Mengambil riwayat absensi beserta ringkasan harian dan keseluruhan
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Tanggal awal (2006-01-02), dipakai bila endDate juga diisi"
// @Param endDate query string false "Tanggal akhir (2006-01-02), inklusif"
// @Success 200 {object} models.AttendanceReport
// @Failure 400 {object} models.ErrorResponse "Format tanggal tidak valid"
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/logs [get]
func (h *AttendanceHandler) GetLogs(c *fiber.Ctx) error {
	claims, ok := c.Locals("employee").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var startDate, endDate *time.Time
	startParam, endParam := c.Query("startDate"), c.Query("endDate")

	// Filter rentang hanya aktif kalau kedua parameter diisi.
	if startParam != "" && endParam != "" {
		start, err := time.ParseInLocation("2006-01-02", startParam, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format startDate harus 2006-01-02"})
		}
		end, err := time.ParseInLocation("2006-01-02", endParam, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format endDate harus 2006-01-02"})
		}
		_, endOfDay := worktime.DayWindow(end, h.loc)
		startDate, endDate = &start, &endOfDay
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.repo.FindByEmployee(ctx, claims.EmployeeID, startDate, endDate)
	if err != nil {
		log.Printf("gagal mengambil riwayat absensi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat absensi"})
	}

	report := worktime.BuildReport(records, h.loc)
	return c.Status(fiber.StatusOK).JSON(report)
}
