package vehicle

import "context"

type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (VehicleWithBranch, error)
	List(ctx context.Context) ([]VehicleWithBranch, error)
	ListByBranch(ctx context.Context, branchID string) ([]VehicleWithBranch, error)
	Create(ctx context.Context, newVehicle Vehicle) (Vehicle, error)
	Update(ctx context.Context, id string, req UpdateVehicleRequest) error
	UpdateBranch(ctx context.Context, id string, branchID string) error
	SoftDelete(ctx context.Context, id string) error
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *string) (bool, error)
}
