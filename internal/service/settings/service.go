package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo    settings.Repository
	logRepo admin.LogRepository
}

func NewSettingsService(repo settings.Repository, logRepo admin.LogRepository) settings.Service {
	return &SettingsServiceImpl{repo: repo, logRepo: logRepo}
}

// Policy implements settings.Service. Malformed or missing values fall back to
// the defaults so a broken settings row can never take the kiosk down.
func (s *SettingsServiceImpl) Policy(ctx context.Context) settings.Policy {
	policy := settings.Default()

	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		slog.Warn("Failed to load settings, using defaults", "error", err)
		return policy
	}

	if raw, ok := stored[settings.KeyWorkDayHours]; ok {
		if hours, err := strconv.ParseFloat(raw, 64); err == nil && hours > 0 {
			policy.WorkDayHours = hours
		}
	}
	if raw, ok := stored[settings.KeyGraceMinutes]; ok {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			policy.GraceMinutes = minutes
		}
	}

	return policy
}

// GetAll implements settings.Service.
func (s *SettingsServiceImpl) GetAll(ctx context.Context) (map[string]string, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return stored, nil
}

// Set implements settings.Service.
func (s *SettingsServiceImpl) Set(ctx context.Context, req settings.SetRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.Set(ctx, req.Key, req.Value); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	// Action log failures never abort the action itself.
	data := fmt.Sprintf(`{"key":%q,"value":%q}`, req.Key, req.Value)
	if err := s.logRepo.Append(ctx, "update_setting", data); err != nil {
		slog.Warn("Failed to append action log", "action", "update_setting", "error", err)
	}

	return nil
}
