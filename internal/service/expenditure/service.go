package expenditure

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/shopspring/decimal"
)

type ExpenditureServiceImpl struct {
	expenditure.ExpenditureRepository
	branch.BranchRepository
}

func NewExpenditureService(expenditureRepository expenditure.ExpenditureRepository, branchRepository branch.BranchRepository) expenditure.ExpenditureService {
	return &ExpenditureServiceImpl{
		ExpenditureRepository: expenditureRepository,
		BranchRepository:      branchRepository,
	}
}

// GetExpenditure implements expenditure.ExpenditureService.
func (s *ExpenditureServiceImpl) GetExpenditure(ctx context.Context, id string) (expenditure.ExpenditureResponse, error) {
	e, err := s.ExpenditureRepository.GetByID(ctx, id)
	if err != nil {
		return expenditure.ExpenditureResponse{}, err
	}
	return toResponse(e), nil
}

// ListExpenditures implements expenditure.ExpenditureService.
func (s *ExpenditureServiceImpl) ListExpenditures(ctx context.Context, req expenditure.ListExpendituresRequest) (expenditure.ListExpendituresResponse, error) {
	expenditures, err := s.ExpenditureRepository.List(ctx)
	if err != nil {
		return expenditure.ListExpendituresResponse{}, fmt.Errorf("failed to list expenditures: %w", err)
	}

	opts := listkit.Options[expenditure.ExpenditureWithBranch]{
		Search: req.Search,
		SearchFields: []func(expenditure.ExpenditureWithBranch) string{
			func(e expenditure.ExpenditureWithBranch) string { return e.Description },
			func(e expenditure.ExpenditureWithBranch) string { return e.BranchName },
			func(e expenditure.ExpenditureWithBranch) string { return string(e.Category) },
		},
		Filters: map[string]string{
			"branch_id": req.BranchID,
			"category":  req.Category,
		},
		FilterFields: map[string]func(expenditure.ExpenditureWithBranch) string{
			"branch_id": func(e expenditure.ExpenditureWithBranch) string { return e.BranchID },
			"category":  func(e expenditure.ExpenditureWithBranch) string { return string(e.Category) },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	result := listkit.Apply(expenditures, opts)

	// TotalAmount sums the filtered view, not just the visible page
	fullOpts := opts
	fullOpts.Page = 1
	fullOpts.PageSize = len(expenditures) + 1
	total := decimal.Zero
	for _, e := range listkit.Apply(expenditures, fullOpts).Page {
		total = total.Add(e.Amount)
	}

	resp := expenditure.ListExpendituresResponse{
		TotalCount:   result.Total,
		Page:         req.Page,
		PageSize:     req.PageSize,
		TotalPages:   result.TotalPages,
		TotalAmount:  total,
		Expenditures: make([]expenditure.ExpenditureResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, e := range result.Page {
		resp.Expenditures = append(resp.Expenditures, toResponse(e))
	}

	return resp, nil
}

// CreateExpenditure implements expenditure.ExpenditureService.
func (s *ExpenditureServiceImpl) CreateExpenditure(ctx context.Context, req expenditure.CreateExpenditureRequest) (expenditure.ExpenditureResponse, error) {
	if _, err := s.BranchRepository.GetByID(ctx, req.BranchID); err != nil {
		return expenditure.ExpenditureResponse{}, err
	}

	spentAt, err := time.Parse("2006-01-02", req.SpentAt)
	if err != nil {
		return expenditure.ExpenditureResponse{}, fmt.Errorf("invalid spent_at: %w", err)
	}

	newExpenditure := expenditure.Expenditure{
		BranchID:    req.BranchID,
		Category:    expenditure.Category(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     spentAt,
	}

	created, err := s.ExpenditureRepository.Create(ctx, newExpenditure)
	if err != nil {
		return expenditure.ExpenditureResponse{}, err
	}

	return s.GetExpenditure(ctx, created.ID)
}

// UpdateExpenditure implements expenditure.ExpenditureService.
func (s *ExpenditureServiceImpl) UpdateExpenditure(ctx context.Context, req expenditure.UpdateExpenditureRequest) (expenditure.ExpenditureResponse, error) {
	if err := s.ExpenditureRepository.Update(ctx, req.ID, req); err != nil {
		return expenditure.ExpenditureResponse{}, err
	}

	return s.GetExpenditure(ctx, req.ID)
}

// DeleteExpenditure implements expenditure.ExpenditureService.
func (s *ExpenditureServiceImpl) DeleteExpenditure(ctx context.Context, id string) error {
	return s.ExpenditureRepository.SoftDelete(ctx, id)
}

func sortKey(key string) func(expenditure.ExpenditureWithBranch) any {
	switch key {
	case "amount":
		return func(e expenditure.ExpenditureWithBranch) any { return e.Amount.InexactFloat64() }
	case "branch":
		return func(e expenditure.ExpenditureWithBranch) any { return e.BranchName }
	case "category":
		return func(e expenditure.ExpenditureWithBranch) any { return string(e.Category) }
	default:
		return func(e expenditure.ExpenditureWithBranch) any { return e.SpentAt }
	}
}

func toResponse(e expenditure.ExpenditureWithBranch) expenditure.ExpenditureResponse {
	return expenditure.ExpenditureResponse{
		ID:          e.ID,
		BranchID:    e.BranchID,
		BranchName:  e.BranchName,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		SpentAt:     e.SpentAt.Format("2006-01-02"),
		RecordedBy:  e.RecordedBy,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}
