package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workedDay(t *testing.T, day string, hours int) DaySummary {
	t.Helper()
	ts, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return DaySummary{
		Day:    day,
		Status: StatusClockedOut,
		Worked: time.Duration(hours) * time.Hour,
		Timeline: []Event{
			{EmployeeID: "emp-1", Kind: KindClockIn, Timestamp: ts.Add(9 * time.Hour)},
			{EmployeeID: "emp-1", Kind: KindClockOut, Timestamp: ts.Add(time.Duration(9+hours) * time.Hour)},
		},
	}
}

func TestAggregatePeriods_SplitAtFifteen(t *testing.T) {
	// Day 15 lands in period 1, day 16 in period 2, for every month length.
	months := []struct {
		month   string
		lastDay int
	}{
		{"2024-02", 29},
		{"2023-02", 28},
		{"2024-04", 30},
		{"2024-01", 31},
	}
	for _, m := range months {
		t.Run(m.month, func(t *testing.T) {
			days := []DaySummary{
				workedDay(t, m.month+"-15", 8),
				workedDay(t, m.month+"-16", 8),
			}

			periods, err := AggregatePeriods(days, nil, m.month, 0)
			require.NoError(t, err)

			assert.Equal(t, "1 – 15", periods[0].Label)
			assert.Equal(t, fmt.Sprintf("16 – %d", m.lastDay), periods[1].Label)
			assert.Equal(t, 1, periods[0].WorkedDays)
			assert.Equal(t, 1, periods[1].WorkedDays)
		})
	}
}

func TestAggregatePeriods_EmptyDaysSkipped(t *testing.T) {
	days := []DaySummary{
		workedDay(t, "2024-03-04", 8),
		{Day: "2024-03-05", Status: StatusOffline, Timeline: []Event{}},
	}

	periods, err := AggregatePeriods(days, nil, "2024-03", 0)
	require.NoError(t, err)

	assert.Equal(t, 1, periods[0].WorkedDays)
	assert.Equal(t, 8.0, periods[0].WorkedHours)
}

func TestAggregatePeriods_LedgerMerge(t *testing.T) {
	orderRef := "ORD-77"
	entries := []ledger.Entry{
		{EmployeeID: "emp-1", Date: mustDate(t, "2024-03-10"), Type: ledger.TypeAdvance, Amount: 200},
		{EmployeeID: "emp-1", Date: mustDate(t, "2024-03-20"), Type: ledger.TypeAdvance, Amount: 50},
		{EmployeeID: "emp-1", Date: mustDate(t, "2024-03-21"), Type: ledger.TypeOrder, Amount: 120, OrderRef: &orderRef},
	}
	days := []DaySummary{
		workedDay(t, "2024-03-10", 8),
		workedDay(t, "2024-03-20", 8),
		workedDay(t, "2024-03-21", 8),
	}

	periods, err := AggregatePeriods(days, entries, "2024-03", 100)
	require.NoError(t, err)

	assert.Equal(t, 200.0, periods[0].Advance)
	assert.Equal(t, 100.0, periods[0].Payout)
	assert.Equal(t, -100.0, periods[0].Balance)

	assert.Equal(t, 50.0, periods[1].Advance)
	assert.Equal(t, 1, periods[1].OrdersCount)
	assert.Equal(t, 120.0, periods[1].OrdersTotal)
	assert.Equal(t, 200.0, periods[1].Payout)
	assert.Equal(t, 150.0, periods[1].Balance)
}

func TestAggregatePeriods_InvalidMonth(t *testing.T) {
	_, err := AggregatePeriods(nil, nil, "2024-3", 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestSummarizeMonth(t *testing.T) {
	now := mustDate(t, "2024-03-31")
	events := []Event{
		{EmployeeID: "emp-1", Kind: KindClockIn, Timestamp: mustDate(t, "2024-03-04").Add(9 * time.Hour)},
		{EmployeeID: "emp-1", Kind: KindClockOut, Timestamp: mustDate(t, "2024-03-04").Add(17 * time.Hour)},
		// Incomplete day: clock-in without clock-out.
		{EmployeeID: "emp-1", Kind: KindClockIn, Timestamp: mustDate(t, "2024-03-05").Add(9 * time.Hour)},
	}

	got, err := SummarizeMonth("emp-1", events, "2024-03", settings.Default(), now, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, got.WorkedDays)
	assert.Equal(t, 1, got.IncompleteDays)
	assert.Equal(t, 8.0, got.HoursPerDay[4])
	assert.Equal(t, 200.0, got.Earned)
	assert.Len(t, got.HoursPerDay, 31)
}

func TestSummarizeMonth_InvalidMonth(t *testing.T) {
	_, err := SummarizeMonth("emp-1", nil, "March", settings.Default(), time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func mustDate(t *testing.T, day string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return ts
}
