package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/attendance"
	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
)

type AttendanceServiceImpl struct {
	eventRepo   attendance.EventRepository
	ledgerRepo  ledger.Repository
	settingsSvc settings.Service
	logRepo     admin.LogRepository
	wages       map[string]float64

	// now is injected so day reductions stay replayable in tests.
	now func() time.Time
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	ledgerRepo ledger.Repository,
	settingsSvc settings.Service,
	logRepo admin.LogRepository,
	wages map[string]float64,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		eventRepo:   eventRepo,
		ledgerRepo:  ledgerRepo,
		settingsSvc: settingsSvc,
		logRepo:     logRepo,
		wages:       wages,
		now:         time.Now,
	}
}

// Punch implements attendance.AttendanceService. The event is stamped with
// server time; the kiosk never supplies timestamps.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.DaySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	kind, ok := attendance.NormalizeKind(req.Action)
	if !ok {
		return attendance.DaySummaryResponse{}, attendance.ErrUnknownAction
	}

	now := s.now()
	if _, err := s.eventRepo.Create(ctx, attendance.Event{
		EmployeeID: req.EmployeeID,
		Kind:       kind,
		Timestamp:  now,
	}); err != nil {
		return attendance.DaySummaryResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	return s.Today(ctx, req.EmployeeID)
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.DaySummaryResponse, error) {
	now := s.now()
	day := now.Format("2006-01-02")

	events, err := s.eventRepo.ListByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return attendance.DaySummaryResponse{}, fmt.Errorf("failed to load today's events: %w", err)
	}

	summary := attendance.ReduceDay(events, day, now)
	return toDaySummaryResponse(employeeID, summary), nil
}

// Overview implements attendance.AttendanceService. One row per employee with
// any event this month, each reduced over today only.
func (s *AttendanceServiceImpl) Overview(ctx context.Context) ([]attendance.DaySummaryResponse, error) {
	now := s.now()
	month := now.Format("2006-01")
	day := now.Format("2006-01-02")

	events, err := s.eventRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month events: %w", err)
	}

	byEmployee := groupByEmployee(events)
	responses := make([]attendance.DaySummaryResponse, 0, len(byEmployee))
	for _, employeeID := range sortedKeys(byEmployee) {
		summary := attendance.ReduceDay(byEmployee[employeeID], day, now)
		responses = append(responses, toDaySummaryResponse(employeeID, summary))
	}
	return responses, nil
}

// Directory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Directory(ctx context.Context, month string) ([]attendance.DirectoryRow, error) {
	filter := attendance.EventFilter{Month: month}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	events, err := s.eventRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month events: %w", err)
	}

	byEmployee := groupByEmployee(events)
	rows := make([]attendance.DirectoryRow, 0, len(byEmployee))
	for _, employeeID := range sortedKeys(byEmployee) {
		employeeEvents := byEmployee[employeeID]

		todaySummary := attendance.ReduceDay(employeeEvents, today, now)

		var workedDays int
		var extra time.Duration
		for _, day := range distinctDays(employeeEvents) {
			reduced := attendance.ReduceDay(employeeEvents, day, now)
			if len(reduced.Timeline) == 0 {
				continue
			}
			workedDays++
			extra += reduced.Extra
		}

		rows = append(rows, attendance.DirectoryRow{
			EmployeeID: employeeID,
			Status:     string(todaySummary.Status),
			Online:     todaySummary.Online,
			WorkedDays: workedDays,
			ExtraHours: extra.Hours(),
		})
	}
	return rows, nil
}

// MonthlySheet implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySheet(ctx context.Context, employeeID, month string) ([]attendance.MonthlyRow, error) {
	events, err := s.eventRepo.ListByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month events: %w", err)
	}
	return attendance.MonthlyRows(events, month)
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID, month string) (attendance.MonthSummary, error) {
	events, err := s.eventRepo.ListByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return attendance.MonthSummary{}, fmt.Errorf("failed to load month events: %w", err)
	}
	return attendance.SummarizeMonth(employeeID, events, month, s.settingsSvc.Policy(ctx), s.now(), s.wages[employeeID])
}

// Periods implements attendance.AttendanceService. Hours and ledger figures
// are computed independently and merged by the half-month split.
func (s *AttendanceServiceImpl) Periods(ctx context.Context, employeeID, month string) ([]attendance.PeriodSummary, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, attendance.ErrInvalidMonth
	}

	events, err := s.eventRepo.ListByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month events: %w", err)
	}

	entries, err := s.ledgerRepo.ListByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	now := s.now()
	daysInMonth := start.AddDate(0, 1, -1).Day()
	days := make([]attendance.DaySummary, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := fmt.Sprintf("%s-%02d", month, d)
		days = append(days, attendance.ReduceDay(events, day, now))
	}

	periods, err := attendance.AggregatePeriods(days, entries, month, s.wages[employeeID])
	if err != nil {
		return nil, err
	}
	return periods[:], nil
}

// ListEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var events []attendance.Event
	var err error
	if filter.EmployeeID != nil {
		events, err = s.eventRepo.ListByEmployeeAndMonth(ctx, *filter.EmployeeID, filter.Month)
	} else {
		events, err = s.eventRepo.ListByMonth(ctx, filter.Month)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, toEventResponse(ev))
	}
	return responses, nil
}

// CreateEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateEvent(ctx context.Context, req attendance.CreateEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	kind, _ := attendance.NormalizeKind(req.Kind)
	ts, _ := time.Parse(time.RFC3339, req.Timestamp)

	created, err := s.eventRepo.Create(ctx, attendance.Event{
		EmployeeID: req.EmployeeID,
		Kind:       kind,
		Timestamp:  ts,
	})
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.logAction(ctx, "create_event", created)
	return toEventResponse(created), nil
}

// UpdateEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateEvent(ctx context.Context, req attendance.UpdateEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	if req.EmployeeID != nil {
		event.EmployeeID = *req.EmployeeID
	}
	if req.Kind != nil {
		event.Kind, _ = attendance.NormalizeKind(*req.Kind)
	}
	if req.Timestamp != nil {
		event.Timestamp, _ = time.Parse(time.RFC3339, *req.Timestamp)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return attendance.EventResponse{}, err
	}

	s.logAction(ctx, "update_event", event)
	return toEventResponse(event), nil
}

// DeleteEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logAction(ctx, "delete_event", event)
	return nil
}

func (s *AttendanceServiceImpl) logAction(ctx context.Context, action string, event attendance.Event) {
	data, err := json.Marshal(toEventResponse(event))
	if err != nil {
		slog.Warn("Failed to marshal action log payload", "action", action, "error", err)
		return
	}
	// Action log failures never abort the correction itself.
	if err := s.logRepo.Append(ctx, action, string(data)); err != nil {
		slog.Warn("Failed to append action log", "action", action, "error", err)
	}
}

func groupByEmployee(events []attendance.Event) map[string][]attendance.Event {
	byEmployee := make(map[string][]attendance.Event)
	for _, ev := range events {
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}
	return byEmployee
}

func sortedKeys(m map[string][]attendance.Event) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// distinctDays returns the calendar days present in events, ordered.
func distinctDays(events []attendance.Event) []string {
	seen := make(map[string]struct{})
	days := make([]string, 0)
	for _, ev := range events {
		d := ev.Day()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

func toEventResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Kind:       string(ev.Kind),
		Timestamp:  ev.Timestamp.Format(time.RFC3339),
		CreatedAt:  ev.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  ev.UpdatedAt.Format(time.RFC3339),
	}
}

func toDaySummaryResponse(employeeID string, s attendance.DaySummary) attendance.DaySummaryResponse {
	timeline := make([]attendance.EventResponse, 0, len(s.Timeline))
	for _, ev := range s.Timeline {
		timeline = append(timeline, toEventResponse(ev))
	}
	return attendance.DaySummaryResponse{
		EmployeeID:  employeeID,
		Day:         s.Day,
		Status:      string(s.Status),
		Online:      s.Online,
		WorkedHours: s.Worked.Hours(),
		ExtraHours:  s.Extra.Hours(),
		Timeline:    timeline,
	}
}
