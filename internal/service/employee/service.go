package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	fileService file.FileService
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		fileService:        fileService,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := listkit.Apply(employees, listkit.Options[employee.EmployeeWithBranch]{
		Search: req.Search,
		SearchFields: []func(employee.EmployeeWithBranch) string{
			func(e employee.EmployeeWithBranch) string { return e.FullName },
			func(e employee.EmployeeWithBranch) string { return e.Role },
			func(e employee.EmployeeWithBranch) string { return e.BranchName },
			func(e employee.EmployeeWithBranch) string { return deref(e.QIDNumber) },
		},
		Filters: map[string]string{
			"status":    req.Status,
			"branch_id": req.BranchID,
			"role":      req.Role,
		},
		FilterFields: map[string]func(employee.EmployeeWithBranch) string{
			"status":    func(e employee.EmployeeWithBranch) string { return string(e.Status) },
			"branch_id": func(e employee.EmployeeWithBranch) string { return deref(e.BranchID) },
			"role":      func(e employee.EmployeeWithBranch) string { return e.Role },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := employee.ListEmployeesResponse{
		TotalCount: result.Total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: result.TotalPages,
		Employees:  make([]employee.EmployeeResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, e := range result.Page {
		resp.Employees = append(resp.Employees, toResponse(e))
	}

	return resp, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.QIDNumber != nil && *req.QIDNumber != "" {
		exists, err := s.EmployeeRepository.ExistsByQID(ctx, *req.QIDNumber, nil)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrQIDExists
		}
	}

	newEmployee := employee.Employee{
		BranchID:          req.BranchID,
		FullName:          req.FullName,
		Role:              req.Role,
		Nationality:       req.Nationality,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		JoinDate:          toDate(req.JoinDate),
		Status:            employee.StatusActive,
		QIDNumber:         req.QIDNumber,
		QIDExpiry:         toDate(req.QIDExpiry),
		PassportNumber:    req.PassportNumber,
		PassportExpiry:    toDate(req.PassportExpiry),
		VisaExpiry:        toDate(req.VisaExpiry),
		MedicalCardExpiry: toDate(req.MedicalCardExpiry),
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, created.ID)
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.QIDNumber != nil && *req.QIDNumber != "" {
		exists, err := s.EmployeeRepository.ExistsByQID(ctx, *req.QIDNumber, &req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrQIDExists
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.SoftDelete(ctx, id)
}

// UploadDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadDocument(ctx context.Context, req employee.UploadDocumentRequest) (document.UploadResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return document.UploadResponse{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, "employees", req.EmployeeID, req.File, req.FileHeader.Filename, req.DocumentType)
	if err != nil {
		return document.UploadResponse{}, err
	}

	url, err := s.fileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return document.UploadResponse{}, err
	}

	rec := document.Record{
		URL:        url,
		FileName:   req.FileHeader.Filename,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.EmployeeRepository.SetDocument(ctx, req.EmployeeID, req.DocumentType, rec); err != nil {
		return document.UploadResponse{}, err
	}

	return document.NewUploadResponse(rec, "document uploaded"), nil
}

func sortKey(key string) func(employee.EmployeeWithBranch) any {
	switch key {
	case "role":
		return func(e employee.EmployeeWithBranch) any { return e.Role }
	case "branch":
		return func(e employee.EmployeeWithBranch) any { return e.BranchName }
	case "join_date":
		return func(e employee.EmployeeWithBranch) any {
			if e.JoinDate == nil {
				return time.Time{}
			}
			return *e.JoinDate
		}
	case "qid_expiry":
		return func(e employee.EmployeeWithBranch) any {
			if e.QIDExpiry == nil {
				return time.Time{}
			}
			return *e.QIDExpiry
		}
	default:
		return func(e employee.EmployeeWithBranch) any { return e.FullName }
	}
}

func toResponse(e employee.EmployeeWithBranch) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                e.ID,
		BranchID:          e.BranchID,
		BranchName:        e.BranchName,
		FullName:          e.FullName,
		Role:              e.Role,
		Nationality:       e.Nationality,
		PhoneNumber:       e.PhoneNumber,
		Email:             e.Email,
		JoinDate:          fromDate(e.JoinDate),
		Status:            string(e.Status),
		QIDNumber:         e.QIDNumber,
		QIDExpiry:         fromDate(e.QIDExpiry),
		PassportNumber:    e.PassportNumber,
		PassportExpiry:    fromDate(e.PassportExpiry),
		VisaExpiry:        fromDate(e.VisaExpiry),
		MedicalCardExpiry: fromDate(e.MedicalCardExpiry),
		Documents:         e.Documents,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
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
