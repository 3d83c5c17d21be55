package tempemployee

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type TempEmployeeService interface {
	GetTempEmployee(ctx context.Context, id string) (TempEmployeeResponse, error)
	ListTempEmployees(ctx context.Context, req ListTempEmployeesRequest) (ListTempEmployeesResponse, error)
	CreateTempEmployee(ctx context.Context, req CreateTempEmployeeRequest) (TempEmployeeResponse, error)
	UpdateTempEmployee(ctx context.Context, req UpdateTempEmployeeRequest) (TempEmployeeResponse, error)
	DeleteTempEmployee(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req UploadDocumentRequest) (document.UploadResponse, error)
}
