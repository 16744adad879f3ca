package postgresql

import (
	"context"
	"fmt"

	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.Repository {
	return &ledgerRepositoryImpl{db: db}
}

// Create implements ledger.Repository. Entries carrying order items are
// written atomically with their items.
func (r *ledgerRepositoryImpl) Create(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	if len(entry.Items) == 0 {
		return r.insertEntry(ctx, entry)
	}

	var created ledger.Entry
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = r.insertEntry(txCtx, entry)
		if err != nil {
			return err
		}

		for _, item := range entry.Items {
			q := GetQuerier(txCtx, r.db)
			_, err := q.Exec(txCtx, `
				INSERT INTO ledger_order_items (id, entry_id, name, price)
				VALUES ($1, $2, $3, $4)
			`, item.ID, created.ID, item.Name, item.Price)
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}
		created.Items = entry.Items
		return nil
	})
	if err != nil {
		return ledger.Entry{}, err
	}
	return created, nil
}

func (r *ledgerRepositoryImpl) insertEntry(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ledger_entries (id, employee_id, entry_date, entry_type, amount, order_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, entry_date, entry_type, amount, order_ref, created_at
	`

	var created ledger.Entry
	err := q.QueryRow(ctx, query, entry.ID, entry.EmployeeID, entry.Date, entry.Type, entry.Amount, entry.OrderRef).
		Scan(&created.ID, &created.EmployeeID, &created.Date, &created.Type, &created.Amount, &created.OrderRef, &created.CreatedAt)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return created, nil
}

// ListByEmployeeAndMonth implements ledger.Repository.
func (r *ledgerRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, entry_type, amount, order_ref, created_at
		FROM ledger_entries
		WHERE employee_id = $1 AND to_char(entry_date, 'YYYY-MM') = $2
		ORDER BY entry_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for %s in %s: %w", employeeID, month, err)
	}
	defer rows.Close()

	entries := make([]ledger.Entry, 0)
	byID := make(map[string]int)
	for rows.Next() {
		var e ledger.Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Type, &e.Amount, &e.OrderRef, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		byID[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}
	rows.Close()

	if len(entries) == 0 {
		return entries, nil
	}

	itemRows, err := q.Query(ctx, `
		SELECT i.id, i.entry_id, i.name, i.price
		FROM ledger_order_items i
		JOIN ledger_entries e ON e.id = i.entry_id
		WHERE e.employee_id = $1 AND to_char(e.entry_date, 'YYYY-MM') = $2
		ORDER BY i.id
	`, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items for %s in %s: %w", employeeID, month, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item ledger.OrderItem
		if err := itemRows.Scan(&item.ID, &item.EntryID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if idx, ok := byID[item.EntryID]; ok {
			entries[idx].Items = append(entries[idx].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return entries, nil
}

// Delete implements ledger.Repository. Order items cascade with the entry.
func (r *ledgerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrEntryNotFound
	}
	return nil
}
