package vacation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVacationRepo struct {
	vacations []vacation.VacationWithEmployee
	nextID    int
}

func (f *fakeVacationRepo) GetByID(ctx context.Context, id string) (vacation.VacationWithEmployee, error) {
	for _, v := range f.vacations {
		if v.ID == id {
			return v, nil
		}
	}
	return vacation.VacationWithEmployee{}, vacation.ErrVacationNotFound
}

func (f *fakeVacationRepo) List(ctx context.Context) ([]vacation.VacationWithEmployee, error) {
	return f.vacations, nil
}

func (f *fakeVacationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationWithEmployee, error) {
	out := []vacation.VacationWithEmployee{}
	for _, v := range f.vacations {
		if v.EmployeeID == employeeID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	f.nextID++
	newVacation.ID = fmt.Sprintf("vac-%d", f.nextID)
	newVacation.CreatedAt = time.Now()
	newVacation.UpdatedAt = newVacation.CreatedAt
	f.vacations = append(f.vacations, vacation.VacationWithEmployee{
		Vacation:     newVacation,
		EmployeeName: "Ahmed Hassan",
	})
	return newVacation, nil
}

func (f *fakeVacationRepo) Update(ctx context.Context, updated vacation.Vacation) error {
	for i, v := range f.vacations {
		if v.ID == updated.ID {
			updated.CreatedAt = v.CreatedAt
			updated.UpdatedAt = time.Now()
			f.vacations[i].Vacation = updated
			return nil
		}
	}
	return vacation.ErrVacationNotFound
}

func (f *fakeVacationRepo) SoftDelete(ctx context.Context, id string) error {
	for i, v := range f.vacations {
		if v.ID == id {
			f.vacations = append(f.vacations[:i], f.vacations[i+1:]...)
			return nil
		}
	}
	return vacation.ErrVacationNotFound
}

func (f *fakeVacationRepo) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	for _, v := range f.vacations {
		if v.EmployeeID != employeeID || v.Status == vacation.StatusCancelled {
			continue
		}
		if excludeID != nil && v.ID == *excludeID {
			continue
		}
		if !v.StartDate.After(end) && !v.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.EmployeeWithBranch
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.EmployeeWithBranch, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.EmployeeWithBranch{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	out := []employee.EmployeeWithBranch{}
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.EmployeeWithBranch, error) {
	return f.List(ctx)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByQID(ctx context.Context, qidNumber string, excludeID *string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error {
	return nil
}

func newTestVacationService(vacationRepo *fakeVacationRepo, today string) *VacationServiceImpl {
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.EmployeeWithBranch{
			"emp-1": {Employee: employee.Employee{ID: "emp-1", FullName: "Ahmed Hassan", Status: employee.StatusActive}},
		},
	}
	svc := NewVacationService(vacationRepo, employeeRepo).(*VacationServiceImpl)
	day, _ := time.Parse("2006-01-02", today)
	svc.now = func() time.Time { return day }
	return svc
}

func TestCreateVacation_DerivesEndDate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeVacationRepo{}
	svc := newTestVacationService(repo, "2024-02-01")

	created, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneMonth,
		StartDate:    "2024-03-01",
	})
	require.NoError(t, err)

	// 30 inclusive days from March 1st.
	assert.Equal(t, "2024-03-01", created.StartDate)
	assert.Equal(t, "2024-03-30", created.EndDate)
	assert.Equal(t, string(vacation.StatusScheduled), created.Status)
}

func TestCreateVacation_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	repo := &fakeVacationRepo{}
	svc := newTestVacationService(repo, "2024-02-01")

	_, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationTwoWeeks,
		StartDate:    "2024-03-01",
	})
	require.NoError(t, err)

	// Second request starts inside the first range.
	_, err = svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneWeek,
		StartDate:    "2024-03-10",
	})
	assert.ErrorIs(t, err, vacation.ErrOverlappingVacation)
}

func TestCreateVacation_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestVacationService(&fakeVacationRepo{}, "2024-02-01")

	_, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-missing",
		DurationCode: vacation.DurationOneWeek,
		StartDate:    "2024-03-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateVacation_InvalidDuration(t *testing.T) {
	ctx := context.Background()
	svc := newTestVacationService(&fakeVacationRepo{}, "2024-02-01")

	_, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: "5weeks",
		StartDate:    "2024-03-01",
	})
	assert.ErrorIs(t, err, vacation.ErrInvalidDuration)
}

func TestUpdateVacation_RecomputesEndDate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeVacationRepo{}
	svc := newTestVacationService(repo, "2024-02-01")

	created, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneWeek,
		StartDate:    "2024-03-01",
	})
	require.NoError(t, err)
	require.Equal(t, "2024-03-07", created.EndDate)

	twoWeeks := vacation.DurationTwoWeeks
	updated, err := svc.UpdateVacation(ctx, vacation.UpdateVacationRequest{
		ID:           created.ID,
		DurationCode: &twoWeeks,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", updated.EndDate)
}

func TestUpdateVacation_StatusOnlyKeepsDates(t *testing.T) {
	ctx := context.Background()
	repo := &fakeVacationRepo{}
	svc := newTestVacationService(repo, "2024-02-01")

	created, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneMonth,
		StartDate:    "2024-03-01",
	})
	require.NoError(t, err)

	cancelled := string(vacation.StatusCancelled)
	updated, err := svc.UpdateVacation(ctx, vacation.UpdateVacationRequest{
		ID:     created.ID,
		Status: &cancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, created.EndDate, updated.EndDate)
	assert.Equal(t, cancelled, updated.Status)
}

func TestListVacations_DerivedStatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := &fakeVacationRepo{}
	svc := newTestVacationService(repo, "2024-03-05")

	// Ongoing as of March 5th.
	_, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneWeek,
		StartDate:    "2024-03-01",
	})
	require.NoError(t, err)

	// Still in the future.
	_, err = svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		EmployeeID:   "emp-1",
		DurationCode: vacation.DurationOneWeek,
		StartDate:    "2024-04-01",
	})
	require.NoError(t, err)

	list, err := svc.ListVacations(ctx, vacation.ListVacationsRequest{Status: string(vacation.StatusOngoing)})
	require.NoError(t, err)
	require.Len(t, list.Vacations, 1)
	assert.Equal(t, "2024-03-01", list.Vacations[0].StartDate)
	assert.Equal(t, string(vacation.StatusOngoing), list.Vacations[0].Status)
}
