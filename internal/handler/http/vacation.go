package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	GetVacation(w http.ResponseWriter, r *http.Request)
	ListVacations(w http.ResponseWriter, r *http.Request)
	CreateVacation(w http.ResponseWriter, r *http.Request)
	UpdateVacation(w http.ResponseWriter, r *http.Request)
	DeleteVacation(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// GetVacation implements VacationHandler.
func (h *VacationHandlerImpl) GetVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation ID is required", nil)
		return
	}

	vacationResponse, err := h.vacationService.GetVacation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacationResponse)
}

// ListVacations implements VacationHandler.
func (h *VacationHandlerImpl) ListVacations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listReq := vacation.ListVacationsRequest{
		Search:     query.Get("search"),
		EmployeeID: query.Get("employee_id"),
		Status:     query.Get("status"),
		SortKey:    query.Get("sort_key"),
		SortDir:    querySortDir(r),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "page_size", 0),
	}

	listResponse, err := h.vacationService.ListVacations(r.Context(), listReq)
	if err != nil {
		slog.Error("ListVacations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// CreateVacation implements VacationHandler.
func (h *VacationHandlerImpl) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var createReq vacation.CreateVacationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	vacationResponse, err := h.vacationService.CreateVacation(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vacation created", "vacation_id", vacationResponse.ID, "employee_id", createReq.EmployeeID)
	response.Created(w, "Vacation created successfully", vacationResponse)
}

// UpdateVacation implements VacationHandler.
func (h *VacationHandlerImpl) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation ID is required", nil)
		return
	}

	var updateReq vacation.UpdateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	vacationResponse, err := h.vacationService.UpdateVacation(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation updated successfully", vacationResponse)
}

// DeleteVacation implements VacationHandler.
func (h *VacationHandlerImpl) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation ID is required", nil)
		return
	}

	if err := h.vacationService.DeleteVacation(r.Context(), id); err != nil {
		slog.Error("DeleteVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vacation deleted", "vacation_id", id)
	response.SuccessWithMessage(w, "Vacation deleted successfully", nil)
}
