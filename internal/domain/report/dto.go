package report

import (
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
)

// View selects which slice of tracked documents a report covers.
type View string

const (
	ViewExpired  View = "expired"
	ViewExpiring View = "expiring"
)

func (v View) Valid() bool {
	return v == ViewExpired || v == ViewExpiring
}

type DocumentReportRequest struct {
	View         View
	Search       string
	DocumentType string
	OwnerKind    string
	SortKey      string
	SortDir      listkit.SortDir
	Page         int
	PageSize     int
}

// DocumentRow is one line of the expiry report: a single tracked
// document belonging to an employee, temp employee or branch.
type DocumentRow struct {
	OwnerID      string `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	OwnerKind    string `json:"owner_kind"`
	Location     string `json:"location,omitempty"`
	DocumentType string `json:"document_type"`
	DocumentName string `json:"document_name"`
	ExpiryDate   string `json:"expiry_date"`
	DaysLeft     int    `json:"days_left"`
	DaysOverdue  int    `json:"days_overdue,omitempty"`
	Severity     string `json:"severity"`
}

type DocumentReportResponse struct {
	View       View          `json:"view"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Rows       []DocumentRow `json:"rows"`
	Summary    Summary       `json:"summary"`
}

// Summary aggregates the full report before pagination.
type Summary struct {
	Tracked  int            `json:"tracked"`
	Expired  int            `json:"expired"`
	Critical int            `json:"critical"`
	Warning  int            `json:"warning"`
	Valid    int            `json:"valid"`
	ByType   map[string]int `json:"by_type"`
}

type ExportRequest struct {
	View         View
	Search       string
	DocumentType string
	OwnerKind    string
}
