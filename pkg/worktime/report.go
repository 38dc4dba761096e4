package worktime

import (
	"time"

	"Sistem-HR-Karyawan/models"
)

// BuildReport mengelompokkan record absensi per hari kalender (kunci
// "2006-01-02" dari field date, dilihat di zona waktu loc) lalu membuat
// ringkasan keseluruhan.
//
// Urutan records dipertahankan apa adanya; pemanggil bertanggung jawab
// mengirim data yang sudah diurutkan (repository mengurutkan date menurun
// dan membatasi 100 record). Rata-rata pada ringkasan adalah rata-rata dari
// TOTAL harian, bukan rata-rata per sesi: hari dengan beberapa sesi tidak
// dinormalisasi per sesi.
func BuildReport(records []models.TimeRecord, loc *time.Location) models.AttendanceReport {
	report := models.AttendanceReport{
		Sessions:   []models.TimeRecord{},
		DailyStats: map[string]*models.DailyStat{},
	}

	for _, rec := range records {
		report.Sessions = append(report.Sessions, rec)

		dateKey := rec.Date.In(loc).Format("2006-01-02")
		day, ok := report.DailyStats[dateKey]
		if !ok {
			day = &models.DailyStat{Sessions: []models.TimeRecord{}}
			report.DailyStats[dateKey] = day
		}

		day.Sessions = append(day.Sessions, rec)
		day.TotalEffectiveHours += rec.EffectiveHours
		day.TotalGrossHours += rec.GrossHours
		day.TotalOvertime += rec.OvertimeHours

		if rec.IsLateArrival {
			day.LateArrivals++
		}
		if rec.IsEarlyDeparture {
			day.EarlyDepartures++
		}
	}

	summary := models.ReportSummary{
		TotalDays: len(report.DailyStats),
	}

	for _, day := range report.DailyStats {
		summary.AvgEffectiveHours += day.TotalEffectiveHours
		summary.AvgGrossHours += day.TotalGrossHours
		summary.TotalLateArrivals += day.LateArrivals
		summary.TotalEarlyDepartures += day.EarlyDepartures
		summary.TotalOvertime += day.TotalOvertime
	}

	if summary.TotalDays > 0 {
		summary.AvgEffectiveHours = Round2(summary.AvgEffectiveHours / float64(summary.TotalDays))
		summary.AvgGrossHours = Round2(summary.AvgGrossHours / float64(summary.TotalDays))
	}

	report.Summary = summary
	return report
}
