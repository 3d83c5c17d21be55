package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type VehicleHandler interface {
	GetVehicle(w http.ResponseWriter, r *http.Request)
	ListVehicles(w http.ResponseWriter, r *http.Request)
	CreateVehicle(w http.ResponseWriter, r *http.Request)
	UpdateVehicle(w http.ResponseWriter, r *http.Request)
	TransferVehicle(w http.ResponseWriter, r *http.Request)
	DeleteVehicle(w http.ResponseWriter, r *http.Request)
}

type VehicleHandlerImpl struct {
	vehicleService vehicle.VehicleService
}

func NewVehicleHandler(vehicleService vehicle.VehicleService) VehicleHandler {
	return &VehicleHandlerImpl{vehicleService: vehicleService}
}

// GetVehicle implements VehicleHandler.
func (h *VehicleHandlerImpl) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vehicle ID is required", nil)
		return
	}

	vehicleResponse, err := h.vehicleService.GetVehicle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vehicleResponse)
}

// ListVehicles implements VehicleHandler.
func (h *VehicleHandlerImpl) ListVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listReq := vehicle.ListVehiclesRequest{
		Search:   query.Get("search"),
		BranchID: query.Get("branch_id"),
		Status:   query.Get("status"),
		SortKey:  query.Get("sort_key"),
		SortDir:  querySortDir(r),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 0),
	}

	listResponse, err := h.vehicleService.ListVehicles(r.Context(), listReq)
	if err != nil {
		slog.Error("ListVehicles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// CreateVehicle implements VehicleHandler.
func (h *VehicleHandlerImpl) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var createReq vehicle.CreateVehicleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateVehicle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	vehicleResponse, err := h.vehicleService.CreateVehicle(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateVehicle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vehicle created", "vehicle_id", vehicleResponse.ID)
	response.Created(w, "Vehicle created successfully", vehicleResponse)
}

// UpdateVehicle implements VehicleHandler.
func (h *VehicleHandlerImpl) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vehicle ID is required", nil)
		return
	}

	var updateReq vehicle.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateVehicle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	vehicleResponse, err := h.vehicleService.UpdateVehicle(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateVehicle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vehicle updated successfully", vehicleResponse)
}

// TransferVehicle implements VehicleHandler.
func (h *VehicleHandlerImpl) TransferVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vehicle ID is required", nil)
		return
	}

	var transferReq vehicle.TransferVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&transferReq); err != nil {
		slog.Error("TransferVehicle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	transferReq.VehicleID = id

	if err := transferReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	vehicleResponse, err := h.vehicleService.TransferVehicle(r.Context(), transferReq)
	if err != nil {
		slog.Error("TransferVehicle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vehicle transferred", "vehicle_id", id, "to_branch_id", transferReq.ToBranchID)
	response.SuccessWithMessage(w, "Vehicle transferred successfully", vehicleResponse)
}

// DeleteVehicle implements VehicleHandler.
func (h *VehicleHandlerImpl) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vehicle ID is required", nil)
		return
	}

	if err := h.vehicleService.DeleteVehicle(r.Context(), id); err != nil {
		slog.Error("DeleteVehicle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vehicle deleted", "vehicle_id", id)
	response.SuccessWithMessage(w, "Vehicle deleted successfully", nil)
}
