// Package worktime berisi perhitungan murni untuk sesi absensi: jam kerja
// turunan dari pasangan clock-in/clock-out, dan agregasi laporan harian.
// Tidak ada akses database di sini; semua fungsi deterministik terhadap
// inputnya supaya gampang diuji.
package worktime

import (
	"math"
	"time"
)

const (
	// Batas jam masuk dan pulang standar, dihitung pada hari kalender
	// clock-in di zona waktu clock-in itu sendiri.
	standardStartHour = 9
	standardEndHour   = 17

	// Jam kerja standar per sesi; lebih dari ini dihitung lembur.
	standardWorkHours = 8.0
)

// Derived adalah hasil perhitungan sekali-jalan saat clock-out.
type Derived struct {
	GrossHours       float64
	EffectiveHours   float64
	OvertimeHours    float64
	IsOnTime         bool
	IsLateArrival    bool
	IsEarlyDeparture bool
}

// Derive menghitung field turunan dari satu pasangan clock-in/clock-out.
//
// Durasi dibulatkan ke 2 desimal (half away from zero). Gross dan effective
// sama karena belum ada kebijakan potongan istirahat. Batas telat (09:00)
// dan pulang cepat (17:00) dua-duanya memakai tanggal kalender clock-in,
// juga ketika clock-out lewat tengah malam.
func Derive(clockIn, clockOut time.Time) Derived {
	hours := Round2(clockOut.Sub(clockIn).Hours())

	nineAM := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		standardStartHour, 0, 0, 0, clockIn.Location())
	fivePM := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		standardEndHour, 0, 0, 0, clockIn.Location())

	late := clockIn.After(nineAM)

	overtime := 0.0
	if hours > standardWorkHours {
		overtime = Round2(hours - standardWorkHours)
	}

	return Derived{
		GrossHours:       hours,
		EffectiveHours:   hours,
		OvertimeHours:    overtime,
		IsOnTime:         !late,
		IsLateArrival:    late,
		IsEarlyDeparture: clockOut.Before(fivePM),
	}
}

// Round2 membulatkan ke 2 desimal, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DayWindow mengembalikan jendela hari kalender [00:00:00.000, 23:59:59.999]
// yang memuat t, di zona waktu loc.
func DayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	local := t.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end = time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999_000_000, loc)
	return start, end
}
