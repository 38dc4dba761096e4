package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Karyawan/models"
)

func dayRecord(day int, effective, overtime float64, late, early bool) models.TimeRecord {
	date := time.Date(2025, 3, day, 0, 0, 0, 0, wib)
	return models.TimeRecord{
		ID:               primitive.NewObjectID(),
		EmployeeID:       primitive.NewObjectID(),
		Date:             date,
		ClockIn:          date.Add(8 * time.Hour),
		GrossHours:       effective,
		EffectiveHours:   effective,
		OvertimeHours:    overtime,
		IsLateArrival:    late,
		IsEarlyDeparture: early,
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, wib)

	assert.Empty(t, report.Sessions)
	assert.NotNil(t, report.Sessions)
	assert.Empty(t, report.DailyStats)
	assert.NotNil(t, report.DailyStats)
	assert.Equal(t, 0, report.Summary.TotalDays)
	assert.Equal(t, 0.0, report.Summary.AvgEffectiveHours)
	assert.Equal(t, 0.0, report.Summary.AvgGrossHours)
	assert.Equal(t, 0, report.Summary.TotalLateArrivals)
	assert.Equal(t, 0, report.Summary.TotalEarlyDepartures)
	assert.Equal(t, 0.0, report.Summary.TotalOvertime)
}

func TestBuildReportGroupsByCalendarDay(t *testing.T) {
	records := []models.TimeRecord{
		dayRecord(11, 6, 0, true, false),
		dayRecord(10, 4, 0, false, true),
		dayRecord(10, 4.5, 0.5, true, false),
	}

	report := BuildReport(records, wib)

	require.Len(t, report.Sessions, 3)
	require.Len(t, report.DailyStats, 2)

	day10 := report.DailyStats["2025-03-10"]
	require.NotNil(t, day10)
	assert.Len(t, day10.Sessions, 2)
	assert.Equal(t, 8.5, day10.TotalEffectiveHours)
	assert.Equal(t, 0.5, day10.TotalOvertime)
	assert.Equal(t, 1, day10.LateArrivals)
	assert.Equal(t, 1, day10.EarlyDepartures)

	day11 := report.DailyStats["2025-03-11"]
	require.NotNil(t, day11)
	assert.Len(t, day11.Sessions, 1)
	assert.Equal(t, 6.0, day11.TotalEffectiveHours)
}

func TestBuildReportAveragesDailyTotals(t *testing.T) {
	// Rata-rata dihitung dari total harian, bukan per sesi: hari dengan
	// dua sesi (8.5 jam total) dan hari satu sesi (6 jam) menghasilkan
	// (8.5 + 6) / 2, bukan (4 + 4.5 + 6) / 3.
	records := []models.TimeRecord{
		dayRecord(11, 6, 0, false, false),
		dayRecord(10, 4, 0, false, false),
		dayRecord(10, 4.5, 0, false, false),
	}

	report := BuildReport(records, wib)

	assert.Equal(t, 2, report.Summary.TotalDays)
	assert.Equal(t, 7.25, report.Summary.AvgEffectiveHours)
	assert.Equal(t, 7.25, report.Summary.AvgGrossHours)
}

func TestBuildReportSummaryTotals(t *testing.T) {
	records := []models.TimeRecord{
		dayRecord(12, 9, 1, true, false),
		dayRecord(11, 7, 0, true, true),
		dayRecord(10, 8.5, 0.5, false, true),
	}

	report := BuildReport(records, wib)

	assert.Equal(t, 3, report.Summary.TotalDays)
	assert.Equal(t, 2, report.Summary.TotalLateArrivals)
	assert.Equal(t, 2, report.Summary.TotalEarlyDepartures)
	assert.Equal(t, 1.5, report.Summary.TotalOvertime)
}

func TestBuildReportKeepsSessionOrder(t *testing.T) {
	newest := dayRecord(12, 8, 0, false, false)
	oldest := dayRecord(10, 8, 0, false, false)

	report := BuildReport([]models.TimeRecord{newest, oldest}, wib)

	require.Len(t, report.Sessions, 2)
	assert.Equal(t, newest.ID, report.Sessions[0].ID)
	assert.Equal(t, oldest.ID, report.Sessions[1].ID)
}
