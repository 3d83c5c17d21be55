package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/report"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DocumentReport(w http.ResponseWriter, r *http.Request)
	ExportDocumentReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DocumentReport implements ReportHandler.
func (h *ReportHandlerImpl) DocumentReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	reportReq := report.DocumentReportRequest{
		View:         report.View(query.Get("view")),
		Search:       query.Get("search"),
		DocumentType: query.Get("document_type"),
		OwnerKind:    query.Get("owner_kind"),
		SortKey:      query.Get("sort_key"),
		SortDir:      querySortDir(r),
		Page:         queryInt(r, "page", 1),
		PageSize:     queryInt(r, "page_size", 0),
	}

	reportResponse, err := h.reportService.DocumentReport(r.Context(), reportReq)
	if err != nil {
		slog.Error("DocumentReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reportResponse)
}

// ExportDocumentReport implements ReportHandler. The report is streamed
// back as an xlsx attachment rather than the JSON envelope.
func (h *ReportHandlerImpl) ExportDocumentReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	exportReq := report.ExportRequest{
		View:         report.View(query.Get("view")),
		Search:       query.Get("search"),
		DocumentType: query.Get("document_type"),
		OwnerKind:    query.Get("owner_kind"),
	}

	content, filename, err := h.reportService.ExportDocumentReport(r.Context(), exportReq)
	if err != nil {
		slog.Error("ExportDocumentReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		slog.Error("ExportDocumentReport write error", "error", err)
	}
}
