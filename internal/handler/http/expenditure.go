package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type ExpenditureHandler interface {
	GetExpenditure(w http.ResponseWriter, r *http.Request)
	ListExpenditures(w http.ResponseWriter, r *http.Request)
	CreateExpenditure(w http.ResponseWriter, r *http.Request)
	UpdateExpenditure(w http.ResponseWriter, r *http.Request)
	DeleteExpenditure(w http.ResponseWriter, r *http.Request)
}

type ExpenditureHandlerImpl struct {
	expenditureService expenditure.ExpenditureService
}

func NewExpenditureHandler(expenditureService expenditure.ExpenditureService) ExpenditureHandler {
	return &ExpenditureHandlerImpl{expenditureService: expenditureService}
}

// GetExpenditure implements ExpenditureHandler.
func (h *ExpenditureHandlerImpl) GetExpenditure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expenditure ID is required", nil)
		return
	}

	expenditureResponse, err := h.expenditureService.GetExpenditure(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenditureResponse)
}

// ListExpenditures implements ExpenditureHandler.
func (h *ExpenditureHandlerImpl) ListExpenditures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listReq := expenditure.ListExpendituresRequest{
		Search:   query.Get("search"),
		BranchID: query.Get("branch_id"),
		Category: query.Get("category"),
		SortKey:  query.Get("sort_key"),
		SortDir:  querySortDir(r),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 0),
	}

	listResponse, err := h.expenditureService.ListExpenditures(r.Context(), listReq)
	if err != nil {
		slog.Error("ListExpenditures service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// CreateExpenditure implements ExpenditureHandler.
func (h *ExpenditureHandlerImpl) CreateExpenditure(w http.ResponseWriter, r *http.Request) {
	var createReq expenditure.CreateExpenditureRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateExpenditure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	expenditureResponse, err := h.expenditureService.CreateExpenditure(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateExpenditure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expenditure created", "expenditure_id", expenditureResponse.ID)
	response.Created(w, "Expenditure created successfully", expenditureResponse)
}

// UpdateExpenditure implements ExpenditureHandler.
func (h *ExpenditureHandlerImpl) UpdateExpenditure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expenditure ID is required", nil)
		return
	}

	var updateReq expenditure.UpdateExpenditureRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateExpenditure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	expenditureResponse, err := h.expenditureService.UpdateExpenditure(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateExpenditure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expenditure updated successfully", expenditureResponse)
}

// DeleteExpenditure implements ExpenditureHandler.
func (h *ExpenditureHandlerImpl) DeleteExpenditure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expenditure ID is required", nil)
		return
	}

	if err := h.expenditureService.DeleteExpenditure(r.Context(), id); err != nil {
		slog.Error("DeleteExpenditure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expenditure deleted", "expenditure_id", id)
	response.SuccessWithMessage(w, "Expenditure deleted successfully", nil)
}
