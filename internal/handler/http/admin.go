package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/domain/settings"
	"github.com/chafiq1992/attendance-app/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSetting(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService    admin.Service
	settingsService settings.Service
}

func NewAdminHandler(adminService admin.Service, settingsService settings.Service) AdminHandler {
	return &adminHandlerImpl{
		adminService:    adminService,
		settingsService: settingsService,
	}
}

// Login implements AdminHandler.
func (h *adminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req admin.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateUser implements AdminHandler.
func (h *adminHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req admin.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin user created", result)
}

// ListUsers implements AdminHandler.
func (h *adminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteUser implements AdminHandler.
func (h *adminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.adminService.DeleteUser(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin user deleted", nil)
}

// Logs implements AdminHandler.
func (h *adminHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.adminService.Logs(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSettings implements AdminHandler.
func (h *adminHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	stored, err := h.settingsService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Defaults applied so clients always see the effective policy.
	policy := h.settingsService.Policy(r.Context())
	response.Success(w, map[string]interface{}{
		"settings":       stored,
		"work_day_hours": policy.WorkDayHours,
		"grace_minutes":  policy.GraceMinutes,
	})
}

// UpdateSetting implements AdminHandler.
func (h *adminHandlerImpl) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req settings.SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsService.Set(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting updated", nil)
}
