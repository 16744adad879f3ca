package attendance

import (
	"fmt"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
)

// PeriodSummary is one payroll half-month bucket. Hours come from the event
// reduction, the financial columns from the ledger; the two are summed
// independently and merged by the day-15 split.
type PeriodSummary struct {
	Label       string        `json:"label"`
	WorkedDays  int           `json:"worked_days"`
	Worked      time.Duration `json:"-"`
	Extra       time.Duration `json:"-"`
	WorkedHours float64       `json:"worked_hours"`
	ExtraHours  float64       `json:"extra_hours"`
	Payout      float64       `json:"payout"`
	Advance     float64       `json:"advance"`
	Balance     float64       `json:"balance"`
	OrdersCount int           `json:"orders_count"`
	OrdersTotal float64       `json:"orders_total"`
}

// periodIndex buckets a day of the month: day 15 belongs to period 1, day 16
// onward to period 2, regardless of month length.
func periodIndex(dayOfMonth int) int {
	if dayOfMonth <= 15 {
		return 0
	}
	return 1
}

// AggregatePeriods folds per-day summaries and ledger entries for one month
// into the two half-month buckets. A worked day is a calendar day whose
// reduction retained any clock activity; dayRate, when non-zero, prices each
// worked day into the payout column.
func AggregatePeriods(days []DaySummary, entries []ledger.Entry, month string, dayRate float64) ([2]PeriodSummary, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return [2]PeriodSummary{}, ErrInvalidMonth
	}
	lastDay := start.AddDate(0, 1, -1).Day()

	periods := [2]PeriodSummary{
		{Label: "1 – 15"},
		{Label: fmt.Sprintf("16 – %d", lastDay)},
	}

	for _, d := range days {
		if len(d.Timeline) == 0 {
			continue
		}
		t, err := time.Parse("2006-01-02", d.Day)
		if err != nil {
			continue
		}
		p := &periods[periodIndex(t.Day())]
		p.WorkedDays++
		p.Worked += d.Worked
		p.Extra += d.Extra
	}

	for _, e := range entries {
		p := &periods[periodIndex(e.DayOfMonth())]
		switch e.Type {
		case ledger.TypeAdvance:
			p.Advance += e.Amount
		case ledger.TypeOrder:
			p.OrdersCount++
			p.OrdersTotal += e.Amount
		}
	}

	for i := range periods {
		periods[i].WorkedHours = periods[i].Worked.Hours()
		periods[i].ExtraHours = periods[i].Extra.Hours()
		periods[i].Payout = dayRate * float64(periods[i].WorkedDays)
		periods[i].Balance = periods[i].Payout - periods[i].Advance
	}

	return periods, nil
}

// MonthSummary backs the employee dashboard: hours per day plus month totals.
// ExtraHours uses the derived policy: it is inferred from each day's worked
// total against the standard day, not from recorded extra spans.
type MonthSummary struct {
	EmployeeID     string          `json:"employee_id"`
	Month          string          `json:"month"`
	HoursPerDay    map[int]float64 `json:"hours_per_day"`
	TotalHours     float64         `json:"total_hours"`
	ExtraHours     float64         `json:"extra_hours"`
	WorkedDays     int             `json:"worked_days"`
	IncompleteDays int             `json:"incomplete_days"`
	Earned         float64         `json:"earned"`
}

// SummarizeMonth reduces every day of the month and rolls the results up.
// A day is incomplete when it has a clock-in but no clock-out; its extrapolated
// running total still counts toward the hours columns.
func SummarizeMonth(employeeID string, events []Event, month string, cfg settings.Policy, now time.Time, dayRate float64) (MonthSummary, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthSummary{}, ErrInvalidMonth
	}
	daysInMonth := start.AddDate(0, 1, -1).Day()

	summary := MonthSummary{
		EmployeeID:  employeeID,
		Month:       month,
		HoursPerDay: make(map[int]float64, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		day := fmt.Sprintf("%s-%02d", month, d)
		reduced := ReduceDay(events, day, now)
		summary.HoursPerDay[d] = reduced.Worked.Hours()
		if len(reduced.Timeline) == 0 {
			continue
		}
		summary.WorkedDays++
		summary.TotalHours += reduced.Worked.Hours()
		summary.ExtraHours += reduced.ExtraUnder(ExtraDerived, cfg).Hours()
		if !hasKind(reduced.Timeline, KindClockOut) {
			summary.IncompleteDays++
		}
	}

	summary.Earned = dayRate * float64(summary.WorkedDays)
	return summary, nil
}

func hasKind(events []Event, kind Kind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
