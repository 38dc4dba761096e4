package repository

import "errors"

// Sentinel error untuk pelanggaran invariant dan data yang tidak ditemukan.
// Handler memetakan error ini ke kode HTTP; selain ini dianggap kegagalan
// infrastruktur (500).
var (
	ErrOpenSessionExists = errors.New("masih ada sesi absensi yang belum di-clock-out")
	ErrDailyLimitReached = errors.New("batas maksimal 3 sesi clock-in per hari sudah tercapai")
	ErrAlreadyClosed     = errors.New("sesi ini sudah di-clock-out")
	ErrRecordNotFound    = errors.New("catatan absensi tidak ditemukan")
	ErrEmailTaken        = errors.New("email sudah terdaftar")
	ErrPayrollNotFound   = errors.New("record payroll tidak ditemukan")
)
