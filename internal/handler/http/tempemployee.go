package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type TempEmployeeHandler interface {
	GetTempEmployee(w http.ResponseWriter, r *http.Request)
	ListTempEmployees(w http.ResponseWriter, r *http.Request)
	CreateTempEmployee(w http.ResponseWriter, r *http.Request)
	UpdateTempEmployee(w http.ResponseWriter, r *http.Request)
	DeleteTempEmployee(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type TempEmployeeHandlerImpl struct {
	tempEmployeeService tempemployee.TempEmployeeService
}

func NewTempEmployeeHandler(tempEmployeeService tempemployee.TempEmployeeService) TempEmployeeHandler {
	return &TempEmployeeHandlerImpl{tempEmployeeService: tempEmployeeService}
}

// GetTempEmployee implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) GetTempEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Temp employee ID is required", nil)
		return
	}

	tempResponse, err := h.tempEmployeeService.GetTempEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tempResponse)
}

// ListTempEmployees implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) ListTempEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listReq := tempemployee.ListTempEmployeesRequest{
		Search:       query.Get("search"),
		Status:       query.Get("status"),
		WorkBranchID: query.Get("work_branch_id"),
		SortKey:      query.Get("sort_key"),
		SortDir:      querySortDir(r),
		Page:         queryInt(r, "page", 1),
		PageSize:     queryInt(r, "page_size", 0),
	}

	listResponse, err := h.tempEmployeeService.ListTempEmployees(r.Context(), listReq)
	if err != nil {
		slog.Error("ListTempEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// CreateTempEmployee implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) CreateTempEmployee(w http.ResponseWriter, r *http.Request) {
	var createReq tempemployee.CreateTempEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTempEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tempResponse, err := h.tempEmployeeService.CreateTempEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTempEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Temp employee created", "temp_employee_id", tempResponse.ID)
	response.Created(w, "Temp employee created successfully", tempResponse)
}

// UpdateTempEmployee implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) UpdateTempEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Temp employee ID is required", nil)
		return
	}

	var updateReq tempemployee.UpdateTempEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTempEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tempResponse, err := h.tempEmployeeService.UpdateTempEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTempEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Temp employee updated successfully", tempResponse)
}

// DeleteTempEmployee implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) DeleteTempEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Temp employee ID is required", nil)
		return
	}

	if err := h.tempEmployeeService.DeleteTempEmployee(r.Context(), id); err != nil {
		slog.Error("DeleteTempEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Temp employee deleted", "temp_employee_id", id)
	response.SuccessWithMessage(w, "Temp employee deleted successfully", nil)
}

// UploadDocument implements TempEmployeeHandler.
func (h *TempEmployeeHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Temp employee ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("UploadDocument parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Document file is required", nil)
		return
	}
	defer file.Close()

	uploadReq := tempemployee.UploadDocumentRequest{
		TempEmployeeID: id,
		DocumentType:   r.FormValue("document_type"),
		File:           file,
		FileHeader:     fileHeader,
	}

	if err := uploadReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	uploadResponse, err := h.tempEmployeeService.UploadDocument(r.Context(), uploadReq)
	if err != nil {
		slog.Error("UploadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Temp employee document uploaded", "temp_employee_id", id, "document_type", uploadReq.DocumentType)
	response.Created(w, "Document uploaded successfully", uploadResponse)
}
