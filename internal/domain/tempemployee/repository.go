package tempemployee

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type TempEmployeeRepository interface {
	GetByID(ctx context.Context, id string) (TempEmployeeWithBranch, error)
	List(ctx context.Context) ([]TempEmployeeWithBranch, error)
	Create(ctx context.Context, newTempEmployee TempEmployee) (TempEmployee, error)
	Update(ctx context.Context, id string, req UpdateTempEmployeeRequest) error
	SoftDelete(ctx context.Context, id string) error
	SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error
}
