package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/dashboard"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	tempRepo        tempemployee.TempEmployeeRepository
	branchRepo      branch.BranchRepository
	vehicleRepo     vehicle.VehicleRepository
	vacationRepo    vacation.VacationRepository
	expenditureRepo expenditure.ExpenditureRepository
	now             func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	tempRepo tempemployee.TempEmployeeRepository,
	branchRepo branch.BranchRepository,
	vehicleRepo vehicle.VehicleRepository,
	vacationRepo vacation.VacationRepository,
	expenditureRepo expenditure.ExpenditureRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:    employeeRepo,
		tempRepo:        tempRepo,
		branchRepo:      branchRepo,
		vehicleRepo:     vehicleRepo,
		vacationRepo:    vacationRepo,
		expenditureRepo: expenditureRepo,
		now:             time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService. Everything is derived
// in memory from the live lists; nothing on the dashboard is persisted.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	temps, err := s.tempRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load temp employees: %w", err)
	}
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load branches: %w", err)
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load vehicles: %w", err)
	}
	vacations, err := s.vacationRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load vacations: %w", err)
	}
	expenditures, err := s.expenditureRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load expenditures: %w", err)
	}

	resp := dashboard.DashboardResponse{
		Branches: len(branches),
	}

	resp.Employees.Total = len(employees)
	for _, e := range employees {
		if e.Status == employee.StatusActive {
			resp.Employees.Active++
		} else {
			resp.Employees.Inactive++
		}
	}

	resp.TempEmployees.Total = len(temps)
	for _, t := range temps {
		if t.Status == tempemployee.StatusActive {
			resp.TempEmployees.Active++
		} else {
			resp.TempEmployees.Inactive++
		}
	}

	resp.Vehicles.Total = len(vehicles)
	for _, v := range vehicles {
		switch v.Status {
		case vehicle.StatusActive:
			resp.Vehicles.Active++
		case vehicle.StatusMaintenance:
			resp.Vehicles.Maintenance++
		case vehicle.StatusRetired:
			resp.Vehicles.Retired++
		}
	}

	for _, v := range vacations {
		switch v.CurrentStatus(today) {
		case vacation.StatusOngoing:
			resp.Vacations.Ongoing++
		case vacation.StatusScheduled:
			resp.Vacations.Scheduled++
		}
	}

	docs := s.classifyDocuments(today, employees, temps, branches)
	summary := expiry.Summarize(docs)
	resp.Documents = dashboard.DocumentStats{
		Tracked:  summary.Tracked,
		Expired:  summary.Expired,
		Critical: summary.Critical,
		Warning:  summary.Warning,
	}

	resp.MonthSpend, resp.SpendByBranch = s.spendStats(today, expenditures)

	return resp, nil
}

func (s *DashboardServiceImpl) classifyDocuments(
	today time.Time,
	employees []employee.EmployeeWithBranch,
	temps []tempemployee.TempEmployeeWithBranch,
	branches []branch.BranchWithCounts,
) []expiry.ClassifiedDoc {
	docs := expiry.Classify(today, employees, employee.ExpiryOwner, employee.ExpiryFields)
	docs = append(docs, expiry.Classify(today, temps, tempemployee.ExpiryOwner, tempemployee.ExpiryFields)...)
	docs = append(docs, expiry.Classify(today, branches, branch.ExpiryOwner, branch.ExpiryFields)...)
	return docs
}

// spendStats totals the current calendar month's expenditures overall and
// per branch.
func (s *DashboardServiceImpl) spendStats(today time.Time, expenditures []expenditure.ExpenditureWithBranch) (decimal.Decimal, []dashboard.BranchSpend) {
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	total := decimal.Zero
	byBranch := make(map[string]*dashboard.BranchSpend)
	order := []string{}

	for _, e := range expenditures {
		if e.SpentAt.Before(monthStart) {
			continue
		}
		total = total.Add(e.Amount)

		entry, ok := byBranch[e.BranchID]
		if !ok {
			entry = &dashboard.BranchSpend{
				BranchID:   e.BranchID,
				BranchName: e.BranchName,
				Amount:     decimal.Zero,
			}
			byBranch[e.BranchID] = entry
			order = append(order, e.BranchID)
		}
		entry.Amount = entry.Amount.Add(e.Amount)
	}

	spend := make([]dashboard.BranchSpend, 0, len(order))
	for _, id := range order {
		spend = append(spend, *byBranch[id])
	}

	return total, spend
}
