package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type VehicleServiceImpl struct {
	db *database.DB
	vehicle.VehicleRepository
	branch.BranchRepository
}

func NewVehicleService(db *database.DB, vehicleRepository vehicle.VehicleRepository, branchRepository branch.BranchRepository) vehicle.VehicleService {
	return &VehicleServiceImpl{
		db:                db,
		VehicleRepository: vehicleRepository,
		BranchRepository:  branchRepository,
	}
}

// GetVehicle implements vehicle.VehicleService.
func (s *VehicleServiceImpl) GetVehicle(ctx context.Context, id string) (vehicle.VehicleResponse, error) {
	v, err := s.VehicleRepository.GetByID(ctx, id)
	if err != nil {
		return vehicle.VehicleResponse{}, err
	}
	return toResponse(v), nil
}

// ListVehicles implements vehicle.VehicleService.
func (s *VehicleServiceImpl) ListVehicles(ctx context.Context, req vehicle.ListVehiclesRequest) (vehicle.ListVehiclesResponse, error) {
	vehicles, err := s.VehicleRepository.List(ctx)
	if err != nil {
		return vehicle.ListVehiclesResponse{}, fmt.Errorf("failed to list vehicles: %w", err)
	}

	result := listkit.Apply(vehicles, listkit.Options[vehicle.VehicleWithBranch]{
		Search: req.Search,
		SearchFields: []func(vehicle.VehicleWithBranch) string{
			func(v vehicle.VehicleWithBranch) string { return v.LicenseNumber },
			func(v vehicle.VehicleWithBranch) string { return v.Model },
			func(v vehicle.VehicleWithBranch) string { return deref(v.Make) },
			func(v vehicle.VehicleWithBranch) string { return v.BranchName },
		},
		Filters: map[string]string{
			"branch_id": req.BranchID,
			"status":    req.Status,
		},
		FilterFields: map[string]func(vehicle.VehicleWithBranch) string{
			"branch_id": func(v vehicle.VehicleWithBranch) string { return v.BranchID },
			"status":    func(v vehicle.VehicleWithBranch) string { return string(v.Status) },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := vehicle.ListVehiclesResponse{
		TotalCount: result.Total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: result.TotalPages,
		Vehicles:   make([]vehicle.VehicleResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, v := range result.Page {
		resp.Vehicles = append(resp.Vehicles, toResponse(v))
	}

	return resp, nil
}

// CreateVehicle implements vehicle.VehicleService.
func (s *VehicleServiceImpl) CreateVehicle(ctx context.Context, req vehicle.CreateVehicleRequest) (vehicle.VehicleResponse, error) {
	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return vehicle.VehicleResponse{}, err
	}

	exists, err := s.VehicleRepository.ExistsByLicenseNumber(ctx, req.LicenseNumber, nil)
	if err != nil {
		return vehicle.VehicleResponse{}, err
	}
	if exists {
		return vehicle.VehicleResponse{}, vehicle.ErrLicenseNumberExists
	}

	status := vehicle.StatusActive
	if req.Status != "" {
		status = vehicle.Status(req.Status)
	}

	newVehicle := vehicle.Vehicle{
		BranchID:        req.BranchID,
		LicenseNumber:   req.LicenseNumber,
		Model:           req.Model,
		Make:            req.Make,
		Year:            req.Year,
		LicenseExpiry:   toDate(req.LicenseExpiry),
		InsuranceExpiry: toDate(req.InsuranceExpiry),
		Status:          status,
	}

	created, err := s.VehicleRepository.Create(ctx, newVehicle)
	if err != nil {
		return vehicle.VehicleResponse{}, err
	}

	return s.GetVehicle(ctx, created.ID)
}

// UpdateVehicle implements vehicle.VehicleService.
func (s *VehicleServiceImpl) UpdateVehicle(ctx context.Context, req vehicle.UpdateVehicleRequest) (vehicle.VehicleResponse, error) {
	if req.LicenseNumber != nil {
		exists, err := s.VehicleRepository.ExistsByLicenseNumber(ctx, *req.LicenseNumber, &req.ID)
		if err != nil {
			return vehicle.VehicleResponse{}, err
		}
		if exists {
			return vehicle.VehicleResponse{}, vehicle.ErrLicenseNumberExists
		}
	}

	if err := s.VehicleRepository.Update(ctx, req.ID, req); err != nil {
		return vehicle.VehicleResponse{}, err
	}

	return s.GetVehicle(ctx, req.ID)
}

// TransferVehicle implements vehicle.VehicleService. The target branch check
// and the branch_id update run in one transaction so a concurrent branch
// delete cannot strand the vehicle.
func (s *VehicleServiceImpl) TransferVehicle(ctx context.Context, req vehicle.TransferVehicleRequest) (vehicle.VehicleResponse, error) {
	current, err := s.VehicleRepository.GetByID(ctx, req.VehicleID)
	if err != nil {
		return vehicle.VehicleResponse{}, err
	}

	if current.BranchID == req.ToBranchID {
		return vehicle.VehicleResponse{}, vehicle.ErrSameBranchTransfer
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.BranchRepository.GetByID(txCtx, req.ToBranchID); err != nil {
			return err
		}

		return s.VehicleRepository.UpdateBranch(txCtx, req.VehicleID, req.ToBranchID)
	})
	if err != nil {
		return vehicle.VehicleResponse{}, err
	}

	return s.GetVehicle(ctx, req.VehicleID)
}

// DeleteVehicle implements vehicle.VehicleService.
func (s *VehicleServiceImpl) DeleteVehicle(ctx context.Context, id string) error {
	return s.VehicleRepository.SoftDelete(ctx, id)
}

func sortKey(key string) func(vehicle.VehicleWithBranch) any {
	switch key {
	case "model":
		return func(v vehicle.VehicleWithBranch) any { return v.Model }
	case "branch":
		return func(v vehicle.VehicleWithBranch) any { return v.BranchName }
	case "year":
		return func(v vehicle.VehicleWithBranch) any {
			if v.Year == nil {
				return 0
			}
			return *v.Year
		}
	case "license_expiry":
		return func(v vehicle.VehicleWithBranch) any {
			if v.LicenseExpiry == nil {
				return time.Time{}
			}
			return *v.LicenseExpiry
		}
	case "insurance_expiry":
		return func(v vehicle.VehicleWithBranch) any {
			if v.InsuranceExpiry == nil {
				return time.Time{}
			}
			return *v.InsuranceExpiry
		}
	default:
		return func(v vehicle.VehicleWithBranch) any { return v.LicenseNumber }
	}
}

func toResponse(v vehicle.VehicleWithBranch) vehicle.VehicleResponse {
	return vehicle.VehicleResponse{
		ID:              v.ID,
		BranchID:        v.BranchID,
		BranchName:      v.BranchName,
		LicenseNumber:   v.LicenseNumber,
		Model:           v.Model,
		Make:            v.Make,
		Year:            v.Year,
		LicenseExpiry:   fromDate(v.LicenseExpiry),
		InsuranceExpiry: fromDate(v.InsuranceExpiry),
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.Format(time.RFC3339),
	}
}

func toDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil
	}
	return &t
}

func fromDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := expiry.FormatDate(t)
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
