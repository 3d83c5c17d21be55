package employee

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, req ListEmployeesRequest) (ListEmployeesResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req UploadDocumentRequest) (document.UploadResponse, error)
}
