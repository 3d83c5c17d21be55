package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vehicle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employees []employee.EmployeeWithBranch
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.EmployeeWithBranch, error) {
	return employee.EmployeeWithBranch{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (s *stubEmployeeRepo) ExistsByQID(ctx context.Context, qidNumber string, excludeID *string) (bool, error) {
	return false, nil
}

func (s *stubEmployeeRepo) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	return nil
}

type stubTempRepo struct {
	temps []tempemployee.TempEmployeeWithBranch
}

func (s *stubTempRepo) GetByID(ctx context.Context, id string) (tempemployee.TempEmployeeWithBranch, error) {
	return tempemployee.TempEmployeeWithBranch{}, tempemployee.ErrTempEmployeeNotFound
}

func (s *stubTempRepo) List(ctx context.Context) ([]tempemployee.TempEmployeeWithBranch, error) {
	return s.temps, nil
}

func (s *stubTempRepo) Create(ctx context.Context, newTempEmployee tempemployee.TempEmployee) (tempemployee.TempEmployee, error) {
	return newTempEmployee, nil
}

func (s *stubTempRepo) Update(ctx context.Context, id string, req tempemployee.UpdateTempEmployeeRequest) error {
	return nil
}

func (s *stubTempRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (s *stubTempRepo) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	return nil
}

type stubBranchRepo struct {
	branches []branch.BranchWithCounts
}

func (s *stubBranchRepo) GetByID(ctx context.Context, id string) (branch.BranchWithCounts, error) {
	return branch.BranchWithCounts{}, branch.ErrBranchNotFound
}

func (s *stubBranchRepo) List(ctx context.Context) ([]branch.BranchWithCounts, error) {
	return s.branches, nil
}

func (s *stubBranchRepo) Create(ctx context.Context, newBranch branch.Branch) (branch.Branch, error) {
	return newBranch, nil
}

func (s *stubBranchRepo) Update(ctx context.Context, id string, req branch.UpdateBranchRequest) error {
	return nil
}

func (s *stubBranchRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (s *stubBranchRepo) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	return false, nil
}

func (s *stubBranchRepo) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	return nil
}

type stubVehicleRepo struct {
	vehicles []vehicle.VehicleWithBranch
}

func (s *stubVehicleRepo) GetByID(ctx context.Context, id string) (vehicle.VehicleWithBranch, error) {
	return vehicle.VehicleWithBranch{}, vehicle.ErrVehicleNotFound
}

func (s *stubVehicleRepo) List(ctx context.Context) ([]vehicle.VehicleWithBranch, error) {
	return s.vehicles, nil
}

func (s *stubVehicleRepo) ListByBranch(ctx context.Context, branchID string) ([]vehicle.VehicleWithBranch, error) {
	return s.vehicles, nil
}

func (s *stubVehicleRepo) Create(ctx context.Context, newVehicle vehicle.Vehicle) (vehicle.Vehicle, error) {
	return newVehicle, nil
}

func (s *stubVehicleRepo) Update(ctx context.Context, id string, req vehicle.UpdateVehicleRequest) error {
	return nil
}

func (s *stubVehicleRepo) UpdateBranch(ctx context.Context, id string, branchID string) error {
	return nil
}

func (s *stubVehicleRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (s *stubVehicleRepo) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *string) (bool, error) {
	return false, nil
}

type stubVacationRepo struct {
	vacations []vacation.VacationWithEmployee
}

func (s *stubVacationRepo) GetByID(ctx context.Context, id string) (vacation.VacationWithEmployee, error) {
	return vacation.VacationWithEmployee{}, vacation.ErrVacationNotFound
}

func (s *stubVacationRepo) List(ctx context.Context) ([]vacation.VacationWithEmployee, error) {
	return s.vacations, nil
}

func (s *stubVacationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationWithEmployee, error) {
	return s.vacations, nil
}

func (s *stubVacationRepo) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	return newVacation, nil
}

func (s *stubVacationRepo) Update(ctx context.Context, updated vacation.Vacation) error { return nil }

func (s *stubVacationRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (s *stubVacationRepo) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	return false, nil
}

type stubExpenditureRepo struct {
	expenditures []expenditure.ExpenditureWithBranch
}

func (s *stubExpenditureRepo) GetByID(ctx context.Context, id string) (expenditure.ExpenditureWithBranch, error) {
	return expenditure.ExpenditureWithBranch{}, expenditure.ErrExpenditureNotFound
}

func (s *stubExpenditureRepo) List(ctx context.Context) ([]expenditure.ExpenditureWithBranch, error) {
	return s.expenditures, nil
}

func (s *stubExpenditureRepo) ListByBranch(ctx context.Context, branchID string) ([]expenditure.ExpenditureWithBranch, error) {
	return s.expenditures, nil
}

func (s *stubExpenditureRepo) Create(ctx context.Context, newExpenditure expenditure.Expenditure) (expenditure.Expenditure, error) {
	return newExpenditure, nil
}

func (s *stubExpenditureRepo) Update(ctx context.Context, id string, req expenditure.UpdateExpenditureRequest) error {
	return nil
}

func (s *stubExpenditureRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func mustDate(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func datePtr(value string) *time.Time {
	t := mustDate(value)
	return &t
}

func newTestDashboardService() *DashboardServiceImpl {
	strPtr := func(s string) *string { return &s }

	employeeRepo := &stubEmployeeRepo{
		employees: []employee.EmployeeWithBranch{
			{Employee: employee.Employee{ID: "emp-1", FullName: "Ahmed Hassan", Status: employee.StatusActive, QIDExpiry: datePtr("2024-06-01")}},
			{Employee: employee.Employee{ID: "emp-2", FullName: "Omar Farouk", Status: employee.StatusInactive}},
		},
	}
	tempRepo := &stubTempRepo{
		temps: []tempemployee.TempEmployeeWithBranch{
			{TempEmployee: tempemployee.TempEmployee{ID: "temp-1", FullName: "Ravi Kumar", Status: tempemployee.StatusActive, MedicalCardExpiry: datePtr("2024-06-18")}},
		},
	}
	branchRepo := &stubBranchRepo{
		branches: []branch.BranchWithCounts{
			{Branch: branch.Branch{ID: "branch-1", Name: "Doha Central", Location: "Doha"}},
			{Branch: branch.Branch{ID: "branch-2", Name: "Al Wakrah", Location: "Al Wakrah"}},
		},
	}
	vehicleRepo := &stubVehicleRepo{
		vehicles: []vehicle.VehicleWithBranch{
			{Vehicle: vehicle.Vehicle{ID: "veh-1", Status: vehicle.StatusActive}},
			{Vehicle: vehicle.Vehicle{ID: "veh-2", Status: vehicle.StatusMaintenance}},
			{Vehicle: vehicle.Vehicle{ID: "veh-3", Status: vehicle.StatusRetired}},
		},
	}
	vacationRepo := &stubVacationRepo{
		vacations: []vacation.VacationWithEmployee{
			{Vacation: vacation.Vacation{ID: "vac-1", Status: vacation.StatusScheduled, StartDate: mustDate("2024-06-10"), EndDate: mustDate("2024-06-16")}},
			{Vacation: vacation.Vacation{ID: "vac-2", Status: vacation.StatusScheduled, StartDate: mustDate("2024-07-01"), EndDate: mustDate("2024-07-07")}},
			{Vacation: vacation.Vacation{ID: "vac-3", Status: vacation.StatusCancelled, StartDate: mustDate("2024-06-14"), EndDate: mustDate("2024-06-20")}},
		},
	}
	expenditureRepo := &stubExpenditureRepo{
		expenditures: []expenditure.ExpenditureWithBranch{
			{
				Expenditure: expenditure.Expenditure{ID: "exp-1", BranchID: "branch-1", Amount: decimal.NewFromInt(500), SpentAt: mustDate("2024-06-03"), RecordedBy: strPtr("admin")},
				BranchName:  "Doha Central",
			},
			{
				Expenditure: expenditure.Expenditure{ID: "exp-2", BranchID: "branch-1", Amount: decimal.NewFromInt(250), SpentAt: mustDate("2024-06-10")},
				BranchName:  "Doha Central",
			},
			{
				Expenditure: expenditure.Expenditure{ID: "exp-3", BranchID: "branch-2", Amount: decimal.NewFromInt(100), SpentAt: mustDate("2024-06-12")},
				BranchName:  "Al Wakrah",
			},
			// Previous month, must not count toward this month's spend.
			{
				Expenditure: expenditure.Expenditure{ID: "exp-4", BranchID: "branch-2", Amount: decimal.NewFromInt(999), SpentAt: mustDate("2024-05-28")},
				BranchName:  "Al Wakrah",
			},
		},
	}

	svc := NewDashboardService(employeeRepo, tempRepo, branchRepo, vehicleRepo, vacationRepo, expenditureRepo).(*DashboardServiceImpl)
	svc.now = func() time.Time { return mustDate("2024-06-15") }
	return svc
}

func TestGetDashboard_Counts(t *testing.T) {
	svc := newTestDashboardService()

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Employees.Total)
	assert.Equal(t, 1, resp.Employees.Active)
	assert.Equal(t, 1, resp.Employees.Inactive)
	assert.Equal(t, 1, resp.TempEmployees.Total)
	assert.Equal(t, 2, resp.Branches)
	assert.Equal(t, 3, resp.Vehicles.Total)
	assert.Equal(t, 1, resp.Vehicles.Active)
	assert.Equal(t, 1, resp.Vehicles.Maintenance)
	assert.Equal(t, 1, resp.Vehicles.Retired)
}

func TestGetDashboard_VacationStatusesDerivedFromDates(t *testing.T) {
	svc := newTestDashboardService()

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// vac-1 spans today, vac-2 is in the future, vac-3 is cancelled and
	// ignored even though its range covers today.
	assert.Equal(t, 1, resp.Vacations.Ongoing)
	assert.Equal(t, 1, resp.Vacations.Scheduled)
}

func TestGetDashboard_DocumentStats(t *testing.T) {
	svc := newTestDashboardService()

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// QID expired two weeks ago, medical card is three days out.
	assert.Equal(t, 2, resp.Documents.Tracked)
	assert.Equal(t, 1, resp.Documents.Expired)
	assert.Equal(t, 1, resp.Documents.Critical)
	assert.Equal(t, 0, resp.Documents.Warning)
}

func TestGetDashboard_MonthSpend(t *testing.T) {
	svc := newTestDashboardService()

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.MonthSpend.Equal(decimal.NewFromInt(850)), "month spend = %s", resp.MonthSpend)

	require.Len(t, resp.SpendByBranch, 2)
	assert.Equal(t, "Doha Central", resp.SpendByBranch[0].BranchName)
	assert.True(t, resp.SpendByBranch[0].Amount.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, "Al Wakrah", resp.SpendByBranch[1].BranchName)
	assert.True(t, resp.SpendByBranch[1].Amount.Equal(decimal.NewFromInt(100)))
}
