package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheetEvent(t *testing.T, kind Kind, stamp string) Event {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", stamp)
	require.NoError(t, err)
	return Event{EmployeeID: "emp-1", Kind: kind, Timestamp: ts}
}

func TestMonthlyRows_OneRowPerDay(t *testing.T) {
	rows, err := MonthlyRows(nil, "2024-02")
	require.NoError(t, err)

	assert.Len(t, rows, 29)
	assert.Equal(t, "2024-02-01", rows[0].Date)
	assert.Equal(t, "2024-02-29", rows[28].Date)
}

func TestMonthlyRows_StampsAndTotals(t *testing.T) {
	events := []Event{
		sheetEvent(t, KindClockIn, "2024-03-04 09:00"),
		sheetEvent(t, KindStartBreak, "2024-03-04 12:00"),
		sheetEvent(t, KindEndBreak, "2024-03-04 12:30"),
		sheetEvent(t, KindClockOut, "2024-03-04 17:00"),
		sheetEvent(t, KindStartExtra, "2024-03-04 18:00"),
		sheetEvent(t, KindEndExtra, "2024-03-04 19:30"),
	}

	rows, err := MonthlyRows(events, "2024-03")
	require.NoError(t, err)

	row := rows[3]
	assert.Equal(t, "2024-03-04", row.Date)
	assert.Equal(t, "09:00", row.In)
	assert.Equal(t, "17:00", row.Out)
	assert.Equal(t, "12:00", row.BreakStart)
	assert.Equal(t, "12:30", row.BreakEnd)
	assert.Equal(t, "18:00", row.ExtraStart)
	assert.Equal(t, "19:30", row.ExtraEnd)
	assert.Equal(t, "8.00", row.TotalHours)
	assert.Equal(t, "1.50", row.ExtraHours)
}

func TestMonthlyRows_LastStampWins(t *testing.T) {
	events := []Event{
		sheetEvent(t, KindClockIn, "2024-03-04 08:55"),
		sheetEvent(t, KindClockIn, "2024-03-04 09:10"),
		sheetEvent(t, KindClockOut, "2024-03-04 17:00"),
	}

	rows, err := MonthlyRows(events, "2024-03")
	require.NoError(t, err)

	row := rows[3]
	assert.Equal(t, "09:10", row.In)
	assert.Equal(t, "17:00", row.Out)
}

func TestMonthlyRows_WeekendFlag(t *testing.T) {
	rows, err := MonthlyRows(nil, "2024-03")
	require.NoError(t, err)

	// 2024-03-02 is a Saturday, 2024-03-03 a Sunday, 2024-03-04 a Monday.
	assert.True(t, rows[1].Weekend)
	assert.True(t, rows[2].Weekend)
	assert.False(t, rows[3].Weekend)
}

func TestMonthlyRows_InvalidMonth(t *testing.T) {
	_, err := MonthlyRows(nil, "03-2024")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
