package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func at(hour, min, sec, ms int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, ms*int(time.Millisecond), wib)
}

func TestDeriveFullDayWithEarlyDeparture(t *testing.T) {
	// 08:00 - 16:30: 8.5 jam, bukan telat, pulang cepat, tanpa lembur.
	d := Derive(at(8, 0, 0, 0), at(16, 30, 0, 0))

	assert.Equal(t, 8.5, d.GrossHours)
	assert.Equal(t, 8.5, d.EffectiveHours)
	assert.Equal(t, 0.0, d.OvertimeHours)
	assert.False(t, d.IsLateArrival)
	assert.True(t, d.IsOnTime)
	assert.True(t, d.IsEarlyDeparture)
}

func TestDeriveLateWithOvertime(t *testing.T) {
	// 09:30 - 19:00: 9.5 jam, telat, bukan pulang cepat, lembur 1.5 jam.
	d := Derive(at(9, 30, 0, 0), at(19, 0, 0, 0))

	assert.Equal(t, 9.5, d.GrossHours)
	assert.Equal(t, 1.5, d.OvertimeHours)
	assert.True(t, d.IsLateArrival)
	assert.False(t, d.IsOnTime)
	assert.False(t, d.IsEarlyDeparture)
}

func TestDeriveLateArrivalBoundary(t *testing.T) {
	// Tepat 09:00:00.000 belum telat; satu milidetik setelahnya telat.
	onTime := Derive(at(9, 0, 0, 0), at(17, 0, 0, 0))
	assert.False(t, onTime.IsLateArrival)
	assert.True(t, onTime.IsOnTime)

	late := Derive(at(9, 0, 0, 1), at(17, 0, 0, 0))
	assert.True(t, late.IsLateArrival)
	assert.False(t, late.IsOnTime)
}

func TestDeriveEarlyDepartureBoundary(t *testing.T) {
	// Tepat 17:00:00.000 bukan pulang cepat; 16:59:59.999 pulang cepat.
	exact := Derive(at(9, 0, 0, 0), at(17, 0, 0, 0))
	assert.False(t, exact.IsEarlyDeparture)

	early := Derive(at(9, 0, 0, 0), at(16, 59, 59, 999))
	assert.True(t, early.IsEarlyDeparture)
}

func TestDeriveBoundariesUseClockInDate(t *testing.T) {
	// Shift malam lewat tengah malam: batas 17:00 tetap milik tanggal
	// clock-in, jadi clock-out jam 02:00 besoknya bukan pulang cepat.
	clockIn := at(22, 0, 0, 0)
	clockOut := clockIn.Add(4 * time.Hour)

	d := Derive(clockIn, clockOut)

	assert.Equal(t, 4.0, d.GrossHours)
	assert.False(t, d.IsEarlyDeparture)
	assert.True(t, d.IsLateArrival)
}

func TestDeriveRoundsToTwoDecimals(t *testing.T) {
	// 8 jam 20 menit = 8.3333... jam -> 8.33
	d := Derive(at(8, 0, 0, 0), at(16, 20, 0, 0))
	assert.Equal(t, 8.33, d.GrossHours)

	// 10 jam 10 menit = 10.1666... jam -> 10.17, lembur 2.17
	d = Derive(at(8, 0, 0, 0), at(18, 10, 0, 0))
	assert.Equal(t, 10.17, d.GrossHours)
	assert.Equal(t, 2.17, d.OvertimeHours)
}

func TestDeriveOvertimeOnlyAboveEightHours(t *testing.T) {
	exactly := Derive(at(8, 0, 0, 0), at(16, 0, 0, 0))
	assert.Equal(t, 8.0, exactly.GrossHours)
	assert.Equal(t, 0.0, exactly.OvertimeHours)

	over := Derive(at(8, 0, 0, 0), at(16, 0, 36, 0))
	assert.Equal(t, 8.01, over.GrossHours)
	assert.Equal(t, 0.01, over.OvertimeHours)
}

func TestDeriveIsPure(t *testing.T) {
	clockIn, clockOut := at(9, 30, 0, 0), at(19, 0, 0, 0)

	first := Derive(clockIn, clockOut)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Derive(clockIn, clockOut))
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	// 8.125 eksak di float64, jadi kasus tepat-setengah benar-benar teruji.
	assert.Equal(t, 8.13, Round2(8.125))
	assert.Equal(t, -8.13, Round2(-8.125))
	assert.Equal(t, 8.33, Round2(8.3333333))
	assert.Equal(t, 0.0, Round2(0))
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 45, 12, 0, wib)

	start, end := DayWindow(now, wib)

	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, wib), start)
	require.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999_000_000, wib), end)
}

func TestDayWindowConvertsZone(t *testing.T) {
	// 18:00 UTC = 01:00 WIB hari berikutnya; jendela harus jatuh di
	// tanggal WIB, bukan tanggal UTC.
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	start, _ := DayWindow(now, wib)

	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, wib), start)
}
