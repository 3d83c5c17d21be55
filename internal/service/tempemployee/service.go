package tempemployee

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/service/file"
)

type TempEmployeeServiceImpl struct {
	tempemployee.TempEmployeeRepository
	fileService file.FileService
}

func NewTempEmployeeService(tempEmployeeRepository tempemployee.TempEmployeeRepository, fileService file.FileService) tempemployee.TempEmployeeService {
	return &TempEmployeeServiceImpl{
		TempEmployeeRepository: tempEmployeeRepository,
		fileService:            fileService,
	}
}

// GetTempEmployee implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) GetTempEmployee(ctx context.Context, id string) (tempemployee.TempEmployeeResponse, error) {
	t, err := s.TempEmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return tempemployee.TempEmployeeResponse{}, err
	}
	return toResponse(t), nil
}

// ListTempEmployees implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) ListTempEmployees(ctx context.Context, req tempemployee.ListTempEmployeesRequest) (tempemployee.ListTempEmployeesResponse, error) {
	temps, err := s.TempEmployeeRepository.List(ctx)
	if err != nil {
		return tempemployee.ListTempEmployeesResponse{}, fmt.Errorf("failed to list temp employees: %w", err)
	}

	result := listkit.Apply(temps, listkit.Options[tempemployee.TempEmployeeWithBranch]{
		Search: req.Search,
		SearchFields: []func(tempemployee.TempEmployeeWithBranch) string{
			func(t tempemployee.TempEmployeeWithBranch) string { return t.FullName },
			func(t tempemployee.TempEmployeeWithBranch) string { return t.Role },
			func(t tempemployee.TempEmployeeWithBranch) string { return t.WorkBranchName },
			func(t tempemployee.TempEmployeeWithBranch) string { return deref(t.QIDNumber) },
		},
		Filters: map[string]string{
			"status":         req.Status,
			"work_branch_id": req.WorkBranchID,
		},
		FilterFields: map[string]func(tempemployee.TempEmployeeWithBranch) string{
			"status":         func(t tempemployee.TempEmployeeWithBranch) string { return string(t.Status) },
			"work_branch_id": func(t tempemployee.TempEmployeeWithBranch) string { return deref(t.WorkBranchID) },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := tempemployee.ListTempEmployeesResponse{
		TotalCount:    result.Total,
		Page:          req.Page,
		PageSize:      req.PageSize,
		TotalPages:    result.TotalPages,
		TempEmployees: make([]tempemployee.TempEmployeeResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, t := range result.Page {
		resp.TempEmployees = append(resp.TempEmployees, toResponse(t))
	}

	return resp, nil
}

// CreateTempEmployee implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) CreateTempEmployee(ctx context.Context, req tempemployee.CreateTempEmployeeRequest) (tempemployee.TempEmployeeResponse, error) {
	newTemp := tempemployee.TempEmployee{
		WorkBranchID:      req.WorkBranchID,
		FullName:          req.FullName,
		Role:              req.Role,
		PhoneNumber:       req.PhoneNumber,
		Status:            tempemployee.StatusActive,
		QIDNumber:         req.QIDNumber,
		QIDExpiry:         toDate(req.QIDExpiry),
		MedicalCardExpiry: toDate(req.MedicalCardExpiry),
	}

	created, err := s.TempEmployeeRepository.Create(ctx, newTemp)
	if err != nil {
		return tempemployee.TempEmployeeResponse{}, err
	}

	return s.GetTempEmployee(ctx, created.ID)
}

// UpdateTempEmployee implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) UpdateTempEmployee(ctx context.Context, req tempemployee.UpdateTempEmployeeRequest) (tempemployee.TempEmployeeResponse, error) {
	if err := s.TempEmployeeRepository.Update(ctx, req.ID, req); err != nil {
		return tempemployee.TempEmployeeResponse{}, err
	}

	return s.GetTempEmployee(ctx, req.ID)
}

// DeleteTempEmployee implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) DeleteTempEmployee(ctx context.Context, id string) error {
	return s.TempEmployeeRepository.SoftDelete(ctx, id)
}

// UploadDocument implements tempemployee.TempEmployeeService.
func (s *TempEmployeeServiceImpl) UploadDocument(ctx context.Context, req tempemployee.UploadDocumentRequest) (document.UploadResponse, error) {
	if _, err := s.TempEmployeeRepository.GetByID(ctx, req.TempEmployeeID); err != nil {
		return document.UploadResponse{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, "temp_employees", req.TempEmployeeID, req.File, req.FileHeader.Filename, req.DocumentType)
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

	if err := s.TempEmployeeRepository.SetDocument(ctx, req.TempEmployeeID, req.DocumentType, rec); err != nil {
		return document.UploadResponse{}, err
	}

	return document.NewUploadResponse(rec, "document uploaded"), nil
}

func sortKey(key string) func(tempemployee.TempEmployeeWithBranch) any {
	switch key {
	case "role":
		return func(t tempemployee.TempEmployeeWithBranch) any { return t.Role }
	case "branch":
		return func(t tempemployee.TempEmployeeWithBranch) any { return t.WorkBranchName }
	case "qid_expiry":
		return func(t tempemployee.TempEmployeeWithBranch) any {
			if t.QIDExpiry == nil {
				return time.Time{}
			}
			return *t.QIDExpiry
		}
	default:
		return func(t tempemployee.TempEmployeeWithBranch) any { return t.FullName }
	}
}

func toResponse(t tempemployee.TempEmployeeWithBranch) tempemployee.TempEmployeeResponse {
	return tempemployee.TempEmployeeResponse{
		ID:                t.ID,
		WorkBranchID:      t.WorkBranchID,
		WorkBranchName:    t.WorkBranchName,
		FullName:          t.FullName,
		Role:              t.Role,
		PhoneNumber:       t.PhoneNumber,
		Status:            string(t.Status),
		QIDNumber:         t.QIDNumber,
		QIDExpiry:         fromDate(t.QIDExpiry),
		MedicalCardExpiry: fromDate(t.MedicalCardExpiry),
		Documents:         t.Documents,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
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
