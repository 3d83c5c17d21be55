package vacation

import "context"

type VacationService interface {
	GetVacation(ctx context.Context, id string) (VacationResponse, error)
	ListVacations(ctx context.Context, req ListVacationsRequest) (ListVacationsResponse, error)
	CreateVacation(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	UpdateVacation(ctx context.Context, req UpdateVacationRequest) (VacationResponse, error)
	DeleteVacation(ctx context.Context, id string) error
}
