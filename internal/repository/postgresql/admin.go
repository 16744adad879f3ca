package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type adminUserRepositoryImpl struct {
	db *database.DB
}

func NewAdminUserRepository(db *database.DB) admin.UserRepository {
	return &adminUserRepositoryImpl{db: db}
}

// Create implements admin.UserRepository.
func (r *adminUserRepositoryImpl) Create(ctx context.Context, user admin.User) (admin.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin_users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, created_at
	`

	var created admin.User
	err := q.QueryRow(ctx, query, user.ID, user.Username, user.PasswordHash).
		Scan(&created.ID, &created.Username, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return admin.User{}, admin.ErrUsernameTaken
		}
		return admin.User{}, fmt.Errorf("failed to create admin user: %w", err)
	}
	return created, nil
}

// GetByUsername implements admin.UserRepository.
func (r *adminUserRepositoryImpl) GetByUsername(ctx context.Context, username string) (admin.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`

	var found admin.User
	err := q.QueryRow(ctx, query, username).
		Scan(&found.ID, &found.Username, &found.PasswordHash, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.User{}, admin.ErrUserNotFound
		}
		return admin.User{}, fmt.Errorf("failed to get admin user %s: %w", username, err)
	}
	return found, nil
}

// List implements admin.UserRepository.
func (r *adminUserRepositoryImpl) List(ctx context.Context) ([]admin.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	defer rows.Close()

	users := make([]admin.User, 0)
	for rows.Next() {
		var u admin.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admin users: %w", err)
	}
	return users, nil
}

// Delete implements admin.UserRepository.
func (r *adminUserRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrUserNotFound
	}
	return nil
}

type adminLogRepositoryImpl struct {
	db *database.DB
}

func NewAdminLogRepository(db *database.DB) admin.LogRepository {
	return &adminLogRepositoryImpl{db: db}
}

// Append implements admin.LogRepository.
func (r *adminLogRepositoryImpl) Append(ctx context.Context, action, data string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `INSERT INTO admin_action_logs (action, data) VALUES ($1, $2)`, action, data); err != nil {
		return fmt.Errorf("failed to append action log: %w", err)
	}
	return nil
}

// ListRecent implements admin.LogRepository.
func (r *adminLogRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]admin.LogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, data, created_at
		FROM admin_action_logs
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list action logs: %w", err)
	}
	defer rows.Close()

	entries := make([]admin.LogEntry, 0)
	for rows.Next() {
		var e admin.LogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.Data, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan action log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read action logs: %w", err)
	}
	return entries, nil
}

// DeleteOlderThan implements admin.LogRepository.
func (r *adminLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM admin_action_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune action logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
