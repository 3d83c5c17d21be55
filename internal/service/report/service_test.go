package report

import (
	"context"
	"testing"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/report"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
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

func datePtr(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

// newTestReportService pins today to 2024-06-15 and seeds one employee, one
// temp employee and one branch with a mix of expired, soon-expiring and
// healthy documents.
func newTestReportService() *ReportServiceImpl {
	employeeRepo := &stubEmployeeRepo{
		employees: []employee.EmployeeWithBranch{
			{
				Employee: employee.Employee{
					ID:         "emp-1",
					FullName:   "Ahmed Hassan",
					QIDExpiry:  datePtr("2024-06-01"), // expired 14 days ago
					VisaExpiry: datePtr("2024-06-20"), // 5 days left
				},
				BranchName: "Doha Central",
			},
		},
	}
	tempRepo := &stubTempRepo{
		temps: []tempemployee.TempEmployeeWithBranch{
			{
				TempEmployee: tempemployee.TempEmployee{
					ID:                "temp-1",
					FullName:          "Ravi Kumar",
					MedicalCardExpiry: datePtr("2024-07-10"), // 25 days left
				},
				WorkBranchName: "Al Wakrah",
			},
		},
	}
	branchRepo := &stubBranchRepo{
		branches: []branch.BranchWithCounts{
			{
				Branch: branch.Branch{
					ID:       "branch-1",
					Name:     "Doha Central",
					Location: "Doha",
					CRExpiry: datePtr("2025-01-01"), // comfortably valid
				},
			},
		},
	}

	svc := NewReportService(employeeRepo, tempRepo, branchRepo).(*ReportServiceImpl)
	today, _ := time.Parse("2006-01-02", "2024-06-15")
	svc.now = func() time.Time { return today }
	return svc
}

func TestDocumentReport_InvalidView(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{View: "everything"})
	assert.ErrorIs(t, err, report.ErrInvalidView)
}

func TestDocumentReport_SummaryCountsAllSources(t *testing.T) {
	svc := newTestReportService()

	resp, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{View: report.ViewExpired})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Summary.Tracked)
	assert.Equal(t, 1, resp.Summary.Expired)
	assert.Equal(t, 1, resp.Summary.Critical)
	assert.Equal(t, 1, resp.Summary.Warning)
	assert.Equal(t, 1, resp.Summary.Valid)
	assert.Equal(t, 1, resp.Summary.ByType["qid"])
	assert.Equal(t, 1, resp.Summary.ByType["medical_card"])
}

func TestDocumentReport_ExpiredView(t *testing.T) {
	svc := newTestReportService()

	resp, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{View: report.ViewExpired})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "Ahmed Hassan", row.OwnerName)
	assert.Equal(t, "qid", row.DocumentType)
	assert.Equal(t, 14, row.DaysOverdue)
	assert.Equal(t, "expired", row.Severity)
}

func TestDocumentReport_ExpiringView(t *testing.T) {
	svc := newTestReportService()

	resp, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{View: report.ViewExpiring})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	// Soonest expiry first.
	assert.Equal(t, "visa", resp.Rows[0].DocumentType)
	assert.Equal(t, 5, resp.Rows[0].DaysLeft)
	assert.Equal(t, "critical", resp.Rows[0].Severity)
	assert.Equal(t, "medical_card", resp.Rows[1].DocumentType)
	assert.Equal(t, 25, resp.Rows[1].DaysLeft)
	assert.Equal(t, "expiring", resp.Rows[1].Severity)
}

func TestDocumentReport_OwnerKindFilter(t *testing.T) {
	svc := newTestReportService()

	resp, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{
		View:      report.ViewExpiring,
		OwnerKind: "temp_employee",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Ravi Kumar", resp.Rows[0].OwnerName)
}

func TestDocumentReport_SearchByOwnerName(t *testing.T) {
	svc := newTestReportService()

	resp, err := svc.DocumentReport(context.Background(), report.DocumentReportRequest{
		View:   report.ViewExpiring,
		Search: "ravi",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "temp_employee", resp.Rows[0].OwnerKind)
}

func TestExportDocumentReport_FilenameAndContent(t *testing.T) {
	svc := newTestReportService()

	content, filename, err := svc.ExportDocumentReport(context.Background(), report.ExportRequest{View: report.ViewExpiring})
	require.NoError(t, err)

	assert.Equal(t, "expiring-documents-2024-06-15.xlsx", filename)
	assert.NotEmpty(t, content)
}
