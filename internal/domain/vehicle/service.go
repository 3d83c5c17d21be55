package vehicle

import "context"

type VehicleService interface {
	GetVehicle(ctx context.Context, id string) (VehicleResponse, error)
	ListVehicles(ctx context.Context, req ListVehiclesRequest) (ListVehiclesResponse, error)
	CreateVehicle(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error)
	UpdateVehicle(ctx context.Context, req UpdateVehicleRequest) (VehicleResponse, error)
	TransferVehicle(ctx context.Context, req TransferVehicleRequest) (VehicleResponse, error)
	DeleteVehicle(ctx context.Context, id string) error
}
