package attendance

import (
	"sort"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/settings"
)

// DaySummary is the reduction of one employee-day. It is derived state only:
// recomputed from the event log on every read, never stored.
type DaySummary struct {
	Day      string
	Status   Status
	Worked   time.Duration
	Extra    time.Duration
	Online   bool
	Timeline []Event
}

// dayState is the accumulator of the reduction fold.
type dayState struct {
	status    Status
	openClock *time.Time
	openBreak *time.Time
	openExtra *time.Time
	worked    time.Duration
	extra     time.Duration
}

// step advances the state by one event. Unmatched closes and duplicate opens
// are no-ops for the accumulators but still move the status; dirty logs must
// degrade to partial totals, never to an error.
func (s dayState) step(ev Event) dayState {
	t := ev.Timestamp
	switch ev.Kind {
	case KindClockIn:
		if s.openClock == nil {
			s.openClock = &t
		}
		s.status = StatusClockedIn
	case KindClockOut:
		if s.openClock != nil {
			s.worked += t.Sub(*s.openClock)
			s.openClock = nil
		}
		s.status = StatusClockedOut
	case KindStartBreak:
		if s.openBreak == nil {
			s.openBreak = &t
		}
		s.status = StatusOnBreak
	case KindEndBreak:
		if s.openBreak != nil {
			s.worked -= t.Sub(*s.openBreak)
			s.openBreak = nil
		}
		s.status = StatusClockedIn
	case KindStartExtra:
		if s.openExtra == nil {
			s.openExtra = &t
		}
		s.status = StatusExtraHours
	case KindEndExtra:
		if s.openExtra != nil {
			s.extra += t.Sub(*s.openExtra)
			s.openExtra = nil
		}
		s.status = StatusClockedIn
	}
	return s
}

// finish closes any still-open spans against now so live views show a ticking
// total for employees currently on shift.
func (s dayState) finish(now time.Time) dayState {
	if s.openClock != nil {
		s.worked += now.Sub(*s.openClock)
	}
	if s.openBreak != nil {
		s.worked -= now.Sub(*s.openBreak)
	}
	if s.openExtra != nil {
		s.extra += now.Sub(*s.openExtra)
	}
	return s
}

// ReduceDay reduces the events of one calendar day for one employee into a
// DaySummary. The input may span multiple days and arrive unsorted; now is
// injected so the computation stays pure and replayable.
//
// Events strictly before the first clock-in of the day are discarded: a break
// or extra marker punched before the shift starts must not pollute the totals.
// Negative worked time (possible after admin edits) is propagated unclamped.
func ReduceDay(events []Event, day string, now time.Time) DaySummary {
	dayEvents := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Day() == day {
			dayEvents = append(dayEvents, ev)
		}
	}

	sort.SliceStable(dayEvents, func(i, j int) bool {
		return dayEvents[i].Timestamp.Before(dayEvents[j].Timestamp)
	})

	// Pre-clock-in stripping. A day without a clock-in reduces to Offline.
	start := -1
	for i, ev := range dayEvents {
		if ev.Kind == KindClockIn {
			start = i
			break
		}
	}
	if start < 0 {
		return DaySummary{Day: day, Status: StatusOffline, Online: true, Timeline: []Event{}}
	}
	dayEvents = dayEvents[start:]

	state := dayState{status: StatusOffline}
	for _, ev := range dayEvents {
		state = state.step(ev)
	}
	state = state.finish(now)

	return DaySummary{
		Day:      day,
		Status:   state.status,
		Worked:   state.worked,
		Extra:    state.extra,
		Online:   state.status != StatusClockedOut,
		Timeline: dayEvents,
	}
}

// ExtraPolicy names the two extra-hours accounting strategies. They are not
// interchangeable: direct sums the recorded extra spans, derived infers extra
// from how far the worked total deviates from the standard day.
type ExtraPolicy string

const (
	ExtraDirect  ExtraPolicy = "direct"
	ExtraDerived ExtraPolicy = "derived"
)

// ExtraUnder returns the day's extra-hours figure under the given strategy.
func (s DaySummary) ExtraUnder(policy ExtraPolicy, cfg settings.Policy) time.Duration {
	if policy == ExtraDerived {
		return DerivedExtra(s.Worked, cfg)
	}
	return s.Extra
}

// DerivedExtra computes extra hours from the worked total alone.
//
// Working past the standard day plus the grace window credits the excess as
// extra. Working less than half the standard day (but more than a minute)
// charges the shortfall past half-day-plus-grace as a deduction, returned
// negative. The deduction branch conflates under-time penalty with extra
// hours; it is kept because payroll relies on the historical figures.
// The result is always an exact multiple of the grace period.
func DerivedExtra(worked time.Duration, cfg settings.Policy) time.Duration {
	std := cfg.StandardDay()
	grace := cfg.Grace()
	if std <= 0 || grace <= 0 {
		return 0
	}

	if worked >= std {
		over := worked - (std + grace)
		if over <= 0 {
			return 0
		}
		return roundToGrace(over, grace)
	}

	if worked > time.Minute && worked <= std/2 {
		short := (std/2 + grace) - worked
		if short <= 0 {
			return 0
		}
		return -roundToGrace(short, grace)
	}

	return 0
}

// roundToGrace rounds d to the nearest multiple of grace.
func roundToGrace(d, grace time.Duration) time.Duration {
	return (d + grace/2) / grace * grace
}
