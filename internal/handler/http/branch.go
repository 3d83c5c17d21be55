package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type BranchHandler interface {
	GetBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	CreateBranch(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	DeleteBranch(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type BranchHandlerImpl struct {
	branchService branch.BranchService
}

func NewBranchHandler(branchService branch.BranchService) BranchHandler {
	return &BranchHandlerImpl{branchService: branchService}
}

// GetBranch implements BranchHandler.
func (h *BranchHandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	branchResponse, err := h.branchService.GetBranch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branchResponse)
}

// ListBranches implements BranchHandler.
func (h *BranchHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listReq := branch.ListBranchesRequest{
		Search:   query.Get("search"),
		Location: query.Get("location"),
		SortKey:  query.Get("sort_key"),
		SortDir:  querySortDir(r),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 0),
	}

	listResponse, err := h.branchService.ListBranches(r.Context(), listReq)
	if err != nil {
		slog.Error("ListBranches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// CreateBranch implements BranchHandler.
func (h *BranchHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var createReq branch.CreateBranchRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	branchResponse, err := h.branchService.CreateBranch(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Branch created", "branch_id", branchResponse.ID)
	response.Created(w, "Branch created successfully", branchResponse)
}

// UpdateBranch implements BranchHandler.
func (h *BranchHandlerImpl) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	var updateReq branch.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	branchResponse, err := h.branchService.UpdateBranch(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated successfully", branchResponse)
}

// DeleteBranch implements BranchHandler.
func (h *BranchHandlerImpl) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	if err := h.branchService.DeleteBranch(r.Context(), id); err != nil {
		slog.Error("DeleteBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Branch deleted", "branch_id", id)
	response.SuccessWithMessage(w, "Branch deleted successfully", nil)
}

// UploadDocument implements BranchHandler.
func (h *BranchHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
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

	uploadReq := branch.UploadDocumentRequest{
		BranchID:     id,
		DocumentType: r.FormValue("document_type"),
		File:         file,
		FileHeader:   fileHeader,
	}

	if err := uploadReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	uploadResponse, err := h.branchService.UploadDocument(r.Context(), uploadReq)
	if err != nil {
		slog.Error("UploadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Branch document uploaded", "branch_id", id, "document_type", uploadReq.DocumentType)
	response.Created(w, "Document uploaded successfully", uploadResponse)
}
