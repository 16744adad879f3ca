package attendance

import (
	"testing"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDay = "2024-03-11"

// at builds a timestamp on the test day.
func at(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", testDay+" "+hhmm)
	require.NoError(t, err)
	return ts
}

func ev(t *testing.T, kind Kind, hhmm string) Event {
	t.Helper()
	return Event{EmployeeID: "emp-1", Kind: kind, Timestamp: at(t, hhmm)}
}

func TestReduceDay_SinglePair(t *testing.T) {
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindClockOut, "17:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 8*time.Hour, got.Worked)
	assert.Equal(t, time.Duration(0), got.Extra)
	assert.Equal(t, StatusClockedOut, got.Status)
	assert.False(t, got.Online)
}

func TestReduceDay_BreakDeducted(t *testing.T) {
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindStartBreak, "12:00"),
		ev(t, KindEndBreak, "12:30"),
		ev(t, KindClockOut, "17:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 7*time.Hour+30*time.Minute, got.Worked)
	assert.Equal(t, time.Duration(0), got.Extra)
	assert.Equal(t, StatusClockedOut, got.Status)
}

func TestReduceDay_PreClockInStripping(t *testing.T) {
	events := []Event{
		ev(t, KindStartBreak, "08:00"),
		ev(t, KindClockIn, "09:00"),
		ev(t, KindClockOut, "17:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 8*time.Hour, got.Worked)
	assert.Len(t, got.Timeline, 2, "stripped event must not appear in timeline")
	assert.Equal(t, KindClockIn, got.Timeline[0].Kind)
}

func TestReduceDay_NoClockInIsOffline(t *testing.T) {
	events := []Event{
		ev(t, KindStartBreak, "08:00"),
		ev(t, KindEndBreak, "08:30"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, StatusOffline, got.Status)
	assert.Equal(t, time.Duration(0), got.Worked)
	assert.Empty(t, got.Timeline)
}

func TestReduceDay_OpenExtraExtrapolation(t *testing.T) {
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindStartExtra, "18:00"),
	}

	got := ReduceDay(events, testDay, at(t, "18:30"))

	// The main clock keeps accruing alongside the open extra span.
	assert.Equal(t, StatusExtraHours, got.Status)
	assert.Equal(t, 30*time.Minute, got.Extra)
	assert.Equal(t, 9*time.Hour+30*time.Minute, got.Worked)
	assert.True(t, got.Online)
}

func TestReduceDay_DuplicateClockInIsNoOp(t *testing.T) {
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindClockIn, "09:05"),
		ev(t, KindClockOut, "17:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	// openClock stays at 09:00, so the full span counts.
	assert.Equal(t, 8*time.Hour, got.Worked)
}

func TestReduceDay_Idempotent(t *testing.T) {
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindStartBreak, "12:00"),
		ev(t, KindEndBreak, "13:00"),
		ev(t, KindClockOut, "18:00"),
	}
	now := at(t, "23:00")

	first := ReduceDay(events, testDay, now)
	second := ReduceDay(events, testDay, now)

	assert.Equal(t, first, second)
}

func TestReduceDay_MonotonicInNow(t *testing.T) {
	events := []Event{ev(t, KindClockIn, "09:00")}

	earlier := ReduceDay(events, testDay, at(t, "10:00"))
	later := ReduceDay(events, testDay, at(t, "11:00"))

	assert.Greater(t, later.Worked, earlier.Worked)
}

func TestReduceDay_UnsortedInput(t *testing.T) {
	events := []Event{
		ev(t, KindClockOut, "17:00"),
		ev(t, KindStartBreak, "12:00"),
		ev(t, KindClockIn, "09:00"),
		ev(t, KindEndBreak, "12:30"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 7*time.Hour+30*time.Minute, got.Worked)
	assert.Equal(t, StatusClockedOut, got.Status)
}

func TestReduceDay_OtherDaysFiltered(t *testing.T) {
	other := Event{EmployeeID: "emp-1", Kind: KindClockIn, Timestamp: at(t, "09:00").AddDate(0, 0, -1)}
	events := []Event{
		other,
		ev(t, KindClockIn, "10:00"),
		ev(t, KindClockOut, "14:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 4*time.Hour, got.Worked)
	assert.Len(t, got.Timeline, 2)
}

func TestReduceDay_NegativeWorkedUnclamped(t *testing.T) {
	// Break closed after the clock-out, longer than the clocked span.
	events := []Event{
		ev(t, KindClockIn, "09:00"),
		ev(t, KindClockOut, "09:30"),
		ev(t, KindStartBreak, "10:00"),
		ev(t, KindEndBreak, "12:00"),
	}

	got := ReduceDay(events, testDay, at(t, "23:00"))

	assert.Equal(t, 30*time.Minute-2*time.Hour, got.Worked)
}

func TestDerivedExtra(t *testing.T) {
	cfg := settings.Policy{WorkDayHours: 8, GraceMinutes: 20}

	cases := []struct {
		name   string
		worked time.Duration
		want   time.Duration
	}{
		{"exactly standard day", 8 * time.Hour, 0},
		{"within grace", 8*time.Hour + 15*time.Minute, 0},
		{"one hour over", 9*time.Hour + 20*time.Minute, time.Hour},
		{"rounded to grace multiple", 9 * time.Hour, 40 * time.Minute},
		{"under half day shortfall", 3 * time.Hour, -(time.Hour + 20*time.Minute)},
		{"between half and full day", 6 * time.Hour, 0},
		{"under a minute", 30 * time.Second, 0},
		{"zero", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DerivedExtra(c.worked, cfg)
			assert.Equal(t, c.want, got)
			if got != 0 {
				assert.Zero(t, got%cfg.Grace(), "result must be a multiple of the grace period")
			}
		})
	}
}

func TestExtraUnder(t *testing.T) {
	cfg := settings.Default()
	s := DaySummary{Worked: 10 * time.Hour, Extra: 45 * time.Minute}

	assert.Equal(t, 45*time.Minute, s.ExtraUnder(ExtraDirect, cfg))
	assert.Equal(t, DerivedExtra(10*time.Hour, cfg), s.ExtraUnder(ExtraDerived, cfg))
}
