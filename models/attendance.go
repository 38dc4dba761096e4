package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	WorkLocationOffice       = "office"
	WorkLocationWFH          = "work_from_home"
	AttendanceStatusPresent  = "present"
	AttendanceStatusAbsent   = "absent"
	AttendanceStatusHalfDay  = "half-day"
	MaxClockInSessionsPerDay = 3
)

// TimeRecord adalah satu sesi clock-in/clock-out. Sesi yang masih terbuka
// disimpan dengan clock_out bernilai null secara eksplisit (bukan field yang
// hilang) supaya indeks parsial "satu sesi terbuka per karyawan" bisa
// menargetkannya. Field turunan diisi tepat satu kali, saat clock-out.
type TimeRecord struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID       primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	Date             time.Time          `json:"date" bson:"date"`
	ClockIn          time.Time          `json:"clock_in" bson:"clock_in"`
	ClockOut         *time.Time         `json:"clock_out" bson:"clock_out"`
	GrossHours       float64            `json:"gross_hours" bson:"gross_hours"`
	EffectiveHours   float64            `json:"effective_hours" bson:"effective_hours"`
	OvertimeHours    float64            `json:"overtime_hours" bson:"overtime_hours"`
	IsOnTime         bool               `json:"is_on_time" bson:"is_on_time"`
	IsLateArrival    bool               `json:"is_late_arrival" bson:"is_late_arrival"`
	IsEarlyDeparture bool               `json:"is_early_departure" bson:"is_early_departure"`
	WorkLocation     string             `json:"work_location" bson:"work_location"`
	Status           string             `json:"status" bson:"status"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// IsOpen melaporkan apakah sesi belum di-clock-out.
func (t *TimeRecord) IsOpen() bool {
	return t.ClockOut == nil
}

type ClockInPayload struct {
	WorkLocation string `json:"work_location" validate:"omitempty,oneof=office work_from_home"`
}

// DailyStat adalah akumulasi satu hari kalender pada laporan absensi.
type DailyStat struct {
	Sessions            []TimeRecord `json:"sessions"`
	TotalEffectiveHours float64      `json:"total_effective_hours"`
	TotalGrossHours     float64      `json:"total_gross_hours"`
	TotalOvertime       float64      `json:"total_overtime"`
	LateArrivals        int          `json:"late_arrivals"`
	EarlyDepartures     int          `json:"early_departures"`
}

type ReportSummary struct {
	TotalDays            int     `json:"total_days"`
	AvgEffectiveHours    float64 `json:"avg_effective_hours"`
	AvgGrossHours        float64 `json:"avg_gross_hours"`
	TotalLateArrivals    int     `json:"total_late_arrivals"`
	TotalEarlyDepartures int     `json:"total_early_departures"`
	TotalOvertime        float64 `json:"total_overtime"`
}

type AttendanceReport struct {
	Sessions   []TimeRecord          `json:"sessions"`
	Summary    ReportSummary         `json:"summary"`
	DailyStats map[string]*DailyStat `json:"daily_stats"`
}
