package employee

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (EmployeeWithBranch, error)
	List(ctx context.Context) ([]EmployeeWithBranch, error)
	ListActive(ctx context.Context) ([]EmployeeWithBranch, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string) error
	ExistsByQID(ctx context.Context, qidNumber string, excludeID *string) (bool, error)
	SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error
}
