package settings

import "time"

// Setting keys as stored in the settings table. The names survive from the
// spreadsheet era so existing admin tooling keeps working.
const (
	KeyWorkDayHours = "WORK_DAY_HOURS"
	KeyGraceMinutes = "GRACE_PERIOD_MIN"
)

// Policy is the numeric configuration the reduction runs under.
type Policy struct {
	WorkDayHours float64
	GraceMinutes int
}

// Default returns the policy applied when the settings store is empty or
// unreachable. Reduction never blocks on configuration.
func Default() Policy {
	return Policy{WorkDayHours: 8, GraceMinutes: 20}
}

// StandardDay returns the configured full work day as a duration.
func (p Policy) StandardDay() time.Duration {
	return time.Duration(p.WorkDayHours * float64(time.Hour))
}

// Grace returns the configured grace window as a duration.
func (p Policy) Grace() time.Duration {
	return time.Duration(p.GraceMinutes) * time.Minute
}
