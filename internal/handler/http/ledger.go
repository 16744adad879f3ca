package http

import (
	"encoding/json"
	"net/http"

	"github.com/chafiq1992/attendance-app/internal/domain/ledger"
	"github.com/chafiq1992/attendance-app/internal/handler/http/response"
)

type LedgerHandler interface {
	RecordAdvance(w http.ResponseWriter, r *http.Request)
	RecordOrder(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.Service
}

func NewLedgerHandler(ledgerService ledger.Service) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

// RecordAdvance implements LedgerHandler.
func (h *ledgerHandlerImpl) RecordAdvance(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.RecordAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", result)
}

// RecordOrder implements LedgerHandler.
func (h *ledgerHandlerImpl) RecordOrder(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.RecordOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order recorded", result)
}

// List implements LedgerHandler.
func (h *ledgerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	month := monthOrCurrent(r)

	result, err := h.ledgerService.List(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
