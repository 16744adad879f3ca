package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/pkg/validator"
	"github.com/google/uuid"
)

type LedgerServiceImpl struct {
	repo    ledger.Repository
	logRepo admin.LogRepository
}

func NewLedgerService(repo ledger.Repository, logRepo admin.LogRepository) ledger.Service {
	return &LedgerServiceImpl{repo: repo, logRepo: logRepo}
}

// RecordAdvance implements ledger.Service.
func (s *LedgerServiceImpl) RecordAdvance(ctx context.Context, req ledger.RecordAdvanceRequest) (ledger.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.repo.Create(ctx, ledger.Entry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       ledger.TypeAdvance,
		Amount:     req.Amount,
	})
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to record advance: %w", err)
	}

	s.logAction(ctx, "record_advance", created)
	return toEntryResponse(created), nil
}

// RecordOrder implements ledger.Service.
func (s *LedgerServiceImpl) RecordOrder(ctx context.Context, req ledger.RecordOrderRequest) (ledger.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	orderRef := req.OrderRef
	entryID := uuid.NewString()

	items := make([]ledger.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ledger.OrderItem{
			ID:      uuid.NewString(),
			EntryID: entryID,
			Name:    item.Name,
			Price:   item.Price,
		})
	}

	created, err := s.repo.Create(ctx, ledger.Entry{
		ID:         entryID,
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       ledger.TypeOrder,
		Amount:     req.Total,
		OrderRef:   &orderRef,
		Items:      items,
	})
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to record order: %w", err)
	}

	s.logAction(ctx, "record_order", created)
	return toEntryResponse(created), nil
}

// List implements ledger.Service.
func (s *LedgerServiceImpl) List(ctx context.Context, employeeID, month string) ([]ledger.EntryResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, ledger.ErrInvalidMonth
	}

	entries, err := s.repo.ListByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	responses := make([]ledger.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toEntryResponse(e))
	}
	return responses, nil
}

func (s *LedgerServiceImpl) logAction(ctx context.Context, action string, entry ledger.Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		slog.Warn("Failed to marshal action log payload", "action", action, "error", err)
		return
	}
	if err := s.logRepo.Append(ctx, action, string(data)); err != nil {
		slog.Warn("Failed to append action log", "action", action, "error", err)
	}
}

func toEntryResponse(e ledger.Entry) ledger.EntryResponse {
	resp := ledger.EntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format("2006-01-02"),
		Type:       string(e.Type),
		Amount:     e.Amount,
		OrderRef:   e.OrderRef,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range e.Items {
		resp.Items = append(resp.Items, ledger.OrderItemResponse{
			Name:  item.Name,
			Price: item.Price,
		})
	}
	return resp
}
