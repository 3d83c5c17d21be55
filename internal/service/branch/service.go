package branch

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/service/file"
)

type BranchServiceImpl struct {
	branch.BranchRepository
	fileService file.FileService
}

func NewBranchService(branchRepository branch.BranchRepository, fileService file.FileService) branch.BranchService {
	return &BranchServiceImpl{
		BranchRepository: branchRepository,
		fileService:      fileService,
	}
}

// GetBranch implements branch.BranchService.
func (s *BranchServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return toResponse(b), nil
}

// ListBranches implements branch.BranchService.
func (s *BranchServiceImpl) ListBranches(ctx context.Context, req branch.ListBranchesRequest) (branch.ListBranchesResponse, error) {
	branches, err := s.BranchRepository.List(ctx)
	if err != nil {
		return branch.ListBranchesResponse{}, fmt.Errorf("failed to list branches: %w", err)
	}

	result := listkit.Apply(branches, listkit.Options[branch.BranchWithCounts]{
		Search: req.Search,
		SearchFields: []func(branch.BranchWithCounts) string{
			func(b branch.BranchWithCounts) string { return b.Name },
			func(b branch.BranchWithCounts) string { return b.Location },
			func(b branch.BranchWithCounts) string { return deref(b.ManagerName) },
		},
		Filters: map[string]string{
			"location": req.Location,
		},
		FilterFields: map[string]func(branch.BranchWithCounts) string{
			"location": func(b branch.BranchWithCounts) string { return b.Location },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := branch.ListBranchesResponse{
		TotalCount: result.Total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: result.TotalPages,
		Branches:   make([]branch.BranchResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, b := range result.Page {
		resp.Branches = append(resp.Branches, toResponse(b))
	}

	return resp, nil
}

// CreateBranch implements branch.BranchService.
func (s *BranchServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	exists, err := s.BranchRepository.ExistsByName(ctx, req.Name, nil)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	if exists {
		return branch.BranchResponse{}, branch.ErrBranchNameExists
	}

	newBranch := branch.Branch{
		Name:                req.Name,
		Location:            req.Location,
		ManagerName:         req.ManagerName,
		ContactNumber:       req.ContactNumber,
		CRExpiry:            toDate(req.CRExpiry),
		RuksaExpiry:         toDate(req.RuksaExpiry),
		ComputerCardExpiry:  toDate(req.ComputerCardExpiry),
		CertificationExpiry: toDate(req.CertificationExpiry),
	}

	created, err := s.BranchRepository.Create(ctx, newBranch)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return s.GetBranch(ctx, created.ID)
}

// UpdateBranch implements branch.BranchService.
func (s *BranchServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if req.Name != nil {
		exists, err := s.BranchRepository.ExistsByName(ctx, *req.Name, &req.ID)
		if err != nil {
			return branch.BranchResponse{}, err
		}
		if exists {
			return branch.BranchResponse{}, branch.ErrBranchNameExists
		}
	}

	if err := s.BranchRepository.Update(ctx, req.ID, req); err != nil {
		return branch.BranchResponse{}, err
	}

	return s.GetBranch(ctx, req.ID)
}

// DeleteBranch implements branch.BranchService.
func (s *BranchServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	return s.BranchRepository.SoftDelete(ctx, id)
}

// UploadDocument implements branch.BranchService.
func (s *BranchServiceImpl) UploadDocument(ctx context.Context, req branch.UploadDocumentRequest) (document.UploadResponse, error) {
	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return document.UploadResponse{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, "branches", req.BranchID, req.File, req.FileHeader.Filename, req.DocumentType)
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

	if err := s.BranchRepository.SetDocument(ctx, req.BranchID, req.DocumentType, rec); err != nil {
		return document.UploadResponse{}, err
	}

	return document.NewUploadResponse(rec, "document uploaded"), nil
}

func sortKey(key string) func(branch.BranchWithCounts) any {
	switch key {
	case "location":
		return func(b branch.BranchWithCounts) any { return b.Location }
	case "employee_count":
		return func(b branch.BranchWithCounts) any { return b.EmployeeCount }
	case "vehicle_count":
		return func(b branch.BranchWithCounts) any { return b.VehicleCount }
	case "cr_expiry":
		return func(b branch.BranchWithCounts) any {
			if b.CRExpiry == nil {
				return time.Time{}
			}
			return *b.CRExpiry
		}
	default:
		return func(b branch.BranchWithCounts) any { return b.Name }
	}
}

func toResponse(b branch.BranchWithCounts) branch.BranchResponse {
	return branch.BranchResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Location:            b.Location,
		ManagerName:         b.ManagerName,
		ContactNumber:       b.ContactNumber,
		CRExpiry:            fromDate(b.CRExpiry),
		RuksaExpiry:         fromDate(b.RuksaExpiry),
		ComputerCardExpiry:  fromDate(b.ComputerCardExpiry),
		CertificationExpiry: fromDate(b.CertificationExpiry),
		EmployeeCount:       b.EmployeeCount,
		VehicleCount:        b.VehicleCount,
		Documents:           b.Documents,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
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
