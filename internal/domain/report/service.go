package report

import "context"

type ReportService interface {
	DocumentReport(ctx context.Context, req DocumentReportRequest) (DocumentReportResponse, error)
	ExportDocumentReport(ctx context.Context, req ExportRequest) ([]byte, string, error)
}
