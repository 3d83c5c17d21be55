package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
)

type VacationServiceImpl struct {
	vacation.VacationRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewVacationService(vacationRepository vacation.VacationRepository, employeeRepository employee.EmployeeRepository) vacation.VacationService {
	return &VacationServiceImpl{
		VacationRepository: vacationRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// GetVacation implements vacation.VacationService.
func (s *VacationServiceImpl) GetVacation(ctx context.Context, id string) (vacation.VacationResponse, error) {
	v, err := s.VacationRepository.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	return s.toResponse(v), nil
}

// ListVacations implements vacation.VacationService.
func (s *VacationServiceImpl) ListVacations(ctx context.Context, req vacation.ListVacationsRequest) (vacation.ListVacationsResponse, error) {
	var vacations []vacation.VacationWithEmployee
	var err error
	if req.EmployeeID != "" && req.EmployeeID != listkit.FilterAll {
		vacations, err = s.VacationRepository.ListByEmployee(ctx, req.EmployeeID)
	} else {
		vacations, err = s.VacationRepository.List(ctx)
	}
	if err != nil {
		return vacation.ListVacationsResponse{}, fmt.Errorf("failed to list vacations: %w", err)
	}

	today := s.now()
	result := listkit.Apply(vacations, listkit.Options[vacation.VacationWithEmployee]{
		Search: req.Search,
		SearchFields: []func(vacation.VacationWithEmployee) string{
			func(v vacation.VacationWithEmployee) string { return v.EmployeeName },
			func(v vacation.VacationWithEmployee) string { return v.EmployeeQID },
			func(v vacation.VacationWithEmployee) string { return v.BranchName },
			func(v vacation.VacationWithEmployee) string { return v.DurationCode },
		},
		Filters: map[string]string{
			"status": req.Status,
		},
		FilterFields: map[string]func(vacation.VacationWithEmployee) string{
			"status": func(v vacation.VacationWithEmployee) string { return string(v.CurrentStatus(today)) },
		},
		SortKey:  sortKey(req.SortKey),
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := vacation.ListVacationsResponse{
		TotalCount: result.Total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: result.TotalPages,
		Vacations:  make([]vacation.VacationResponse, 0, len(result.Page)),
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, v := range result.Page {
		resp.Vacations = append(resp.Vacations, s.toResponse(v))
	}

	return resp, nil
}

// CreateVacation implements vacation.VacationService. The end date is always
// derived from the start date and duration code, never taken from the client.
func (s *VacationServiceImpl) CreateVacation(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return vacation.VacationResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return vacation.VacationResponse{}, vacation.ErrInvalidDuration
	}

	end, ok := vacation.ResolveEndDate(start, req.DurationCode)
	if !ok {
		return vacation.VacationResponse{}, vacation.ErrInvalidDuration
	}

	overlap, err := s.VacationRepository.HasOverlap(ctx, req.EmployeeID, start, end, nil)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if overlap {
		return vacation.VacationResponse{}, vacation.ErrOverlappingVacation
	}

	newVacation := vacation.Vacation{
		EmployeeID:   req.EmployeeID,
		DurationCode: req.DurationCode,
		StartDate:    start,
		EndDate:      end,
		Reason:       req.Reason,
		Status:       vacation.StatusScheduled,
	}

	created, err := s.VacationRepository.Create(ctx, newVacation)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	return s.GetVacation(ctx, created.ID)
}

// UpdateVacation implements vacation.VacationService. Changing the start date
// or duration recomputes the end date from the duration table.
func (s *VacationServiceImpl) UpdateVacation(ctx context.Context, req vacation.UpdateVacationRequest) (vacation.VacationResponse, error) {
	current, err := s.VacationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	updated := current.Vacation

	if req.DurationCode != nil {
		updated.DurationCode = *req.DurationCode
	}
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return vacation.VacationResponse{}, vacation.ErrInvalidDuration
		}
		updated.StartDate = start
	}
	if req.Reason != nil {
		updated.Reason = req.Reason
	}
	if req.Status != nil {
		updated.Status = vacation.Status(*req.Status)
	}

	if req.DurationCode != nil || req.StartDate != nil {
		end, ok := vacation.ResolveEndDate(updated.StartDate, updated.DurationCode)
		if !ok {
			return vacation.VacationResponse{}, vacation.ErrInvalidDuration
		}
		updated.EndDate = end

		overlap, err := s.VacationRepository.HasOverlap(ctx, updated.EmployeeID, updated.StartDate, updated.EndDate, &req.ID)
		if err != nil {
			return vacation.VacationResponse{}, err
		}
		if overlap {
			return vacation.VacationResponse{}, vacation.ErrOverlappingVacation
		}
	}

	if err := s.VacationRepository.Update(ctx, updated); err != nil {
		return vacation.VacationResponse{}, err
	}

	return s.GetVacation(ctx, req.ID)
}

// DeleteVacation implements vacation.VacationService.
func (s *VacationServiceImpl) DeleteVacation(ctx context.Context, id string) error {
	return s.VacationRepository.SoftDelete(ctx, id)
}

func sortKey(key string) func(vacation.VacationWithEmployee) any {
	switch key {
	case "employee":
		return func(v vacation.VacationWithEmployee) any { return v.EmployeeName }
	case "end_date":
		return func(v vacation.VacationWithEmployee) any { return v.EndDate }
	default:
		return func(v vacation.VacationWithEmployee) any { return v.StartDate }
	}
}

func (s *VacationServiceImpl) toResponse(v vacation.VacationWithEmployee) vacation.VacationResponse {
	return vacation.VacationResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		EmployeeQID:  v.EmployeeQID,
		BranchName:   v.BranchName,
		DurationCode: v.DurationCode,
		StartDate:    v.StartDate.Format("2006-01-02"),
		EndDate:      v.EndDate.Format("2006-01-02"),
		Reason:       v.Reason,
		Status:       string(v.CurrentStatus(s.now())),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
