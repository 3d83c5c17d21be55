package report

import (
	"context"
	"fmt"
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/branch"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/employee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/report"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/tempemployee"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	tempRepo     tempemployee.TempEmployeeRepository
	branchRepo   branch.BranchRepository
	now          func() time.Time
}

func NewReportService(employeeRepo employee.EmployeeRepository, tempRepo tempemployee.TempEmployeeRepository, branchRepo branch.BranchRepository) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		tempRepo:     tempRepo,
		branchRepo:   branchRepo,
		now:          time.Now,
	}
}

// classifyAll gathers every tracked document across employees, temp
// employees and branches into one classified set. A failure loading one
// source fails the report; a bad date inside a source never does.
func (s *ReportServiceImpl) classifyAll(ctx context.Context) ([]expiry.ClassifiedDoc, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	temps, err := s.tempRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load temp employees: %w", err)
	}
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load branches: %w", err)
	}

	docs := expiry.Classify(today, employees, employee.ExpiryOwner, employee.ExpiryFields)
	docs = append(docs, expiry.Classify(today, temps, tempemployee.ExpiryOwner, tempemployee.ExpiryFields)...)
	docs = append(docs, expiry.Classify(today, branches, branch.ExpiryOwner, branch.ExpiryFields)...)

	return docs, nil
}

// DocumentReport implements report.ReportService.
func (s *ReportServiceImpl) DocumentReport(ctx context.Context, req report.DocumentReportRequest) (report.DocumentReportResponse, error) {
	if !req.View.Valid() {
		return report.DocumentReportResponse{}, report.ErrInvalidView
	}

	all, err := s.classifyAll(ctx)
	if err != nil {
		return report.DocumentReportResponse{}, err
	}
	summary := expiry.Summarize(all)

	var view []expiry.ClassifiedDoc
	if req.View == report.ViewExpired {
		view = expiry.Expired(all)
	} else {
		view = expiry.ExpiringSoon(all)
	}

	result := listkit.Apply(view, listkit.Options[expiry.ClassifiedDoc]{
		Search: req.Search,
		SearchFields: []func(expiry.ClassifiedDoc) string{
			func(d expiry.ClassifiedDoc) string { return d.Owner.Name },
			func(d expiry.ClassifiedDoc) string { return d.Owner.Location },
			func(d expiry.ClassifiedDoc) string { return d.DocumentLabel },
		},
		Filters: map[string]string{
			"document_type": req.DocumentType,
			"owner_kind":    req.OwnerKind,
		},
		FilterFields: map[string]func(expiry.ClassifiedDoc) string{
			"document_type": func(d expiry.ClassifiedDoc) string { return d.DocumentType },
			"owner_kind":    func(d expiry.ClassifiedDoc) string { return string(d.Owner.Kind) },
		},
		SortKey:  s.sortKey(req.View, req.SortKey),
		SortDir:  s.sortDir(req.View, req.SortKey, req.SortDir),
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	resp := report.DocumentReportResponse{
		View:       req.View,
		TotalCount: result.Total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: result.TotalPages,
		Rows:       make([]report.DocumentRow, 0, len(result.Page)),
		Summary: report.Summary{
			Tracked:  summary.Tracked,
			Expired:  summary.Expired,
			Critical: summary.Critical,
			Warning:  summary.Warning,
			Valid:    summary.Valid,
			ByType:   summary.ByType,
		},
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.PageSize <= 0 {
		resp.PageSize = listkit.DefaultPageSize
	}
	for _, d := range result.Page {
		resp.Rows = append(resp.Rows, toRow(req.View, d))
	}

	return resp, nil
}

// ExportDocumentReport implements report.ReportService. It renders the full
// filtered view, not just one page, into an xlsx workbook.
func (s *ReportServiceImpl) ExportDocumentReport(ctx context.Context, req report.ExportRequest) ([]byte, string, error) {
	full, err := s.DocumentReport(ctx, report.DocumentReportRequest{
		View:         req.View,
		Search:       req.Search,
		DocumentType: req.DocumentType,
		OwnerKind:    req.OwnerKind,
		Page:         1,
		PageSize:     1 << 20,
	})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Expired Documents"
	daysHeader := "Days Overdue"
	if req.View == report.ViewExpiring {
		sheet = "Expiring Documents"
		daysHeader = "Days Left"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Name", "Type", "Location", "Document", "Expiry Date", daysHeader, "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, row := range full.Rows {
		days := row.DaysLeft
		if req.View == report.ViewExpired {
			days = row.DaysOverdue
		}
		values := []interface{}{
			row.OwnerName,
			row.OwnerKind,
			row.Location,
			row.DocumentName,
			row.ExpiryDate,
			days,
			row.Severity,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("%s-documents-%s.xlsx", req.View, s.now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// sortKey picks the default ordering per view: expired documents sort by how
// long they have been overdue, expiring ones by how soon they expire.
func (s *ReportServiceImpl) sortKey(view report.View, key string) func(expiry.ClassifiedDoc) any {
	switch key {
	case "owner":
		return func(d expiry.ClassifiedDoc) any { return d.Owner.Name }
	case "document":
		return func(d expiry.ClassifiedDoc) any { return d.DocumentLabel }
	case "expiry_date":
		return func(d expiry.ClassifiedDoc) any { return d.ExpiryDate }
	default:
		return func(d expiry.ClassifiedDoc) any { return d.DaysLeft }
	}
}

func (s *ReportServiceImpl) sortDir(view report.View, key string, dir listkit.SortDir) listkit.SortDir {
	if key != "" && dir != "" {
		return dir
	}
	// Most overdue first for the expired view, soonest first for expiring.
	// Both orders are ascending on DaysLeft.
	return listkit.SortAsc
}

func toRow(view report.View, d expiry.ClassifiedDoc) report.DocumentRow {
	severity := d.Severity()
	if view == report.ViewExpired {
		severity = "expired"
	}
	return report.DocumentRow{
		OwnerID:      d.Owner.ID,
		OwnerName:    d.Owner.Name,
		OwnerKind:    string(d.Owner.Kind),
		Location:     d.Owner.Location,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentLabel,
		ExpiryDate:   d.ExpiryDate.Format("2006-01-02"),
		DaysLeft:     d.DaysLeft,
		DaysOverdue:  d.DaysOverdue(),
		Severity:     severity,
	}
}
