package vacation

import (
	"context"
	"time"
)

type VacationRepository interface {
	GetByID(ctx context.Context, id string) (VacationWithEmployee, error)
	List(ctx context.Context) ([]VacationWithEmployee, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]VacationWithEmployee, error)
	Create(ctx context.Context, newVacation Vacation) (Vacation, error)
	Update(ctx context.Context, updated Vacation) error
	SoftDelete(ctx context.Context, id string) error
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)
}
