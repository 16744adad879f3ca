package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerRepo struct {
	entries []ledger.Entry
}

func (f *fakeLedgerRepo) Create(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLedgerRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]ledger.Entry, error) {
	var out []ledger.Entry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && e.Date.Format("2006-01") == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return ledger.ErrEntryNotFound
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

func TestRecordAdvance(t *testing.T) {
	repo := &fakeLedgerRepo{}
	logRepo := &fakeLogRepo{}
	svc := NewLedgerService(repo, logRepo)

	got, err := svc.RecordAdvance(context.Background(), ledger.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-10",
		Amount:     150,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "advance", got.Type)
	assert.Equal(t, 150.0, got.Amount)
	assert.Nil(t, got.OrderRef)
	assert.Equal(t, []string{"record_advance"}, logRepo.actions)
}

func TestRecordOrder(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, &fakeLogRepo{})

	got, err := svc.RecordOrder(context.Background(), ledger.RecordOrderRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-10",
		OrderRef:   "ORD-42",
		Total:      89.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "order", got.Type)
	require.NotNil(t, got.OrderRef)
	assert.Equal(t, "ORD-42", *got.OrderRef)
}

func TestRecordOrder_WithItems(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, &fakeLogRepo{})

	got, err := svc.RecordOrder(context.Background(), ledger.RecordOrderRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-10",
		OrderRef:   "ORD-43",
		Total:      35,
		Items: []ledger.OrderItemRequest{
			{Name: "lunch", Price: 25},
			{Name: "drink", Price: 10},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "lunch", got.Items[0].Name)
	assert.Equal(t, 10.0, got.Items[1].Price)

	require.Len(t, repo.entries, 1)
	for _, item := range repo.entries[0].Items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, repo.entries[0].ID, item.EntryID)
	}
}

func TestRecordOrder_InvalidItem(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, &fakeLogRepo{})

	_, err := svc.RecordOrder(context.Background(), ledger.RecordOrderRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-10",
		OrderRef:   "ORD-44",
		Total:      35,
		Items:      []ledger.OrderItemRequest{{Name: "", Price: 0}},
	})
	assert.Error(t, err)
	assert.Empty(t, repo.entries)
}

func TestRecordAdvance_Invalid(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, &fakeLogRepo{})

	cases := []ledger.RecordAdvanceRequest{
		{EmployeeID: "", Date: "2024-03-10", Amount: 10},
		{EmployeeID: "emp-1", Date: "10/03/2024", Amount: 10},
		{EmployeeID: "emp-1", Date: "2024-03-10", Amount: 0},
	}
	for _, req := range cases {
		_, err := svc.RecordAdvance(context.Background(), req)
		assert.Error(t, err)
	}
	assert.Empty(t, repo.entries)
}

func TestList_FiltersByMonth(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, &fakeLogRepo{})

	_, err := svc.RecordAdvance(context.Background(), ledger.RecordAdvanceRequest{EmployeeID: "emp-1", Date: "2024-03-10", Amount: 10})
	require.NoError(t, err)
	_, err = svc.RecordAdvance(context.Background(), ledger.RecordAdvanceRequest{EmployeeID: "emp-1", Date: "2024-04-02", Amount: 20})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), "emp-1", "2024-03")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-10", got[0].Date)
}

func TestList_InvalidMonth(t *testing.T) {
	svc := NewLedgerService(&fakeLedgerRepo{}, &fakeLogRepo{})

	_, err := svc.List(context.Background(), "emp-1", "march")
	assert.ErrorIs(t, err, ledger.ErrInvalidMonth)
}
