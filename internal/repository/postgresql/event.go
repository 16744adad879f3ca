package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chafiq1992/attendance-app/internal/domain/attendance"
	"github.com/chafiq1992/attendance-app/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// Create implements attendance.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (employee_id, kind, ts)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, kind, ts, created_at, updated_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query, event.EmployeeID, event.Kind, event.Timestamp).
		Scan(&created.ID, &created.EmployeeID, &created.Kind, &created.Timestamp, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, created_at, updated_at
		FROM attendance_events
		WHERE id = $1
	`

	var found attendance.Event
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.EmployeeID, &found.Kind, &found.Timestamp, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Event{}, attendance.ErrEventNotFound
		}
		return attendance.Event{}, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return found, nil
}

// Update implements attendance.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, event attendance.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_events
		SET employee_id = $1, kind = $2, ts = $3, updated_at = now()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, event.EmployeeID, event.Kind, event.Timestamp, event.ID)
	if err != nil {
		return fmt.Errorf("failed to update event %d: %w", event.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}
	return nil
}

// Delete implements attendance.EventRepository.
func (r *eventRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}
	return nil
}

// ListByMonth implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, created_at, updated_at
		FROM attendance_events
		WHERE to_char(ts, 'YYYY-MM') = $1
		ORDER BY ts, id
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for month %s: %w", month, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByEmployeeAndMonth implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, created_at, updated_at
		FROM attendance_events
		WHERE employee_id = $1 AND to_char(ts, 'YYYY-MM') = $2
		ORDER BY ts, id
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s in %s: %w", employeeID, month, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByEmployeeAndDay implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndDay(ctx context.Context, employeeID, day string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, created_at, updated_at
		FROM attendance_events
		WHERE employee_id = $1 AND to_char(ts, 'YYYY-MM-DD') = $2
		ORDER BY ts, id
	`

	rows, err := q.Query(ctx, query, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s on %s: %w", employeeID, day, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]attendance.Event, error) {
	events := make([]attendance.Event, 0)
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Kind, &ev.Timestamp, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
