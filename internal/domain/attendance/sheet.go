package attendance

import (
	"fmt"
	"sort"
	"time"
)

// MonthlyRow is one line of the printable monthly sheet. Cells hold local
// "HH:MM" stamps; when a kind was punched more than once the latest stamp
// wins, matching the spreadsheet the sheet view replaced. Weekend and holiday
// flags are display hints only and play no part in the financial math.
type MonthlyRow struct {
	Date       string `json:"date"`
	In         string `json:"in"`
	Out        string `json:"out"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	ExtraStart string `json:"extra_start"`
	ExtraEnd   string `json:"extra_end"`
	TotalHours string `json:"total_hours"`
	ExtraHours string `json:"extra_hours"`
	Weekend    bool   `json:"weekend"`
	Holiday    bool   `json:"holiday"`
}

// MonthlyRows builds one row per calendar day of the month, including days
// with no events. Per-day totals pair clock-in/out spans; the extra column
// always uses direct accounting over startextra/endextra spans.
func MonthlyRows(events []Event, month string) ([]MonthlyRow, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, ErrInvalidMonth
	}
	daysInMonth := start.AddDate(0, 1, -1).Day()

	byDay := make(map[string][]Event)
	for _, ev := range events {
		d := ev.Day()
		byDay[d] = append(byDay[d], ev)
	}
	for _, dayEvents := range byDay {
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Timestamp.Before(dayEvents[j].Timestamp)
		})
	}

	rows := make([]MonthlyRow, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%s-%02d", month, d)
		weekday := start.AddDate(0, 0, d-1).Weekday()
		row := MonthlyRow{
			Date:    date,
			Weekend: weekday == time.Saturday || weekday == time.Sunday,
		}

		var lastIn, lastExtra *time.Time
		var total, extra time.Duration
		for _, ev := range byDay[date] {
			t := ev.Timestamp
			stamp := t.Format("15:04")
			switch ev.Kind {
			case KindClockIn:
				row.In = stamp
				lastIn = &t
			case KindClockOut:
				row.Out = stamp
				if lastIn != nil {
					total += t.Sub(*lastIn)
					lastIn = nil
				}
			case KindStartBreak:
				row.BreakStart = stamp
			case KindEndBreak:
				row.BreakEnd = stamp
			case KindStartExtra:
				row.ExtraStart = stamp
				lastExtra = &t
			case KindEndExtra:
				row.ExtraEnd = stamp
				if lastExtra != nil {
					extra += t.Sub(*lastExtra)
					lastExtra = nil
				}
			}
		}

		if total != 0 {
			row.TotalHours = fmt.Sprintf("%.2f", total.Hours())
		}
		if extra != 0 {
			row.ExtraHours = fmt.Sprintf("%.2f", extra.Hours())
		}
		rows = append(rows, row)
	}

	return rows, nil
}
