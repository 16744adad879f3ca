package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored map[string]string
	err    error
}

func (f *fakeSettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeSettingsRepo) Set(ctx context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = make(map[string]string)
	}
	f.stored[key] = value
	return nil
}

type fakeLogRepo struct {
	actions []string
}

func (f *fakeLogRepo) Append(ctx context.Context, action, data string) error {
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeLogRepo) ListRecent(ctx context.Context, limit int) ([]admin.LogEntry, error) {
	return nil, nil
}

func (f *fakeLogRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func TestPolicy_StoredValues(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{stored: map[string]string{
		settings.KeyWorkDayHours: "7.5",
		settings.KeyGraceMinutes: "15",
	}}, &fakeLogRepo{})

	policy := svc.Policy(context.Background())

	assert.Equal(t, 7.5, policy.WorkDayHours)
	assert.Equal(t, 15, policy.GraceMinutes)
}

func TestPolicy_MalformedValuesFallBack(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{stored: map[string]string{
		settings.KeyWorkDayHours: "lots",
		settings.KeyGraceMinutes: "-5",
	}}, &fakeLogRepo{})

	policy := svc.Policy(context.Background())

	assert.Equal(t, settings.Default(), policy)
}

func TestPolicy_StoreFailureFallsBack(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{err: errors.New("connection refused")}, &fakeLogRepo{})

	policy := svc.Policy(context.Background())

	assert.Equal(t, settings.Default(), policy)
}

func TestSet_ValidatesKeyAndValue(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo, &fakeLogRepo{})

	err := svc.Set(context.Background(), settings.SetRequest{Key: "UNKNOWN", Value: "8"})
	assert.Error(t, err)

	err = svc.Set(context.Background(), settings.SetRequest{Key: settings.KeyWorkDayHours, Value: "-1"})
	assert.Error(t, err)

	err = svc.Set(context.Background(), settings.SetRequest{Key: settings.KeyWorkDayHours, Value: "9"})
	require.NoError(t, err)
	assert.Equal(t, "9", repo.stored[settings.KeyWorkDayHours])
}

func TestSet_AuditLogged(t *testing.T) {
	logRepo := &fakeLogRepo{}
	svc := NewSettingsService(&fakeSettingsRepo{}, logRepo)

	err := svc.Set(context.Background(), settings.SetRequest{Key: settings.KeyGraceMinutes, Value: "30"})
	require.NoError(t, err)

	assert.Equal(t, []string{"update_setting"}, logRepo.actions)
}
