package ledger

import (
	"fmt"

	"github.com/chafiq1992/attendance-app/internal/pkg/validator"
)

type RecordAdvanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
}

func (r *RecordAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordOrderRequest struct {
	EmployeeID string             `json:"employee_id"`
	Date       string             `json:"date"`
	OrderRef   string             `json:"order_ref"`
	Total      float64            `json:"total"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (r *RecordOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.OrderRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "order_ref",
			Message: "order_ref is required",
		})
	}

	if r.Total <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total must be positive",
		})
	}

	for i, item := range r.Items {
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: "item name is required",
			})
		}
		if item.Price <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "item price must be positive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID         string              `json:"id"`
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	Type       string              `json:"type"`
	Amount     float64             `json:"amount"`
	OrderRef   *string             `json:"order_ref,omitempty"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	CreatedAt  string              `json:"created_at"`
}

type OrderItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
