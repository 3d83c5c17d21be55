package tempemployee

import (
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
)

// TempEmployee is a short-term hire. It tracks a narrower document set than a
// permanent employee: only the QID and medical card matter for temps.
type TempEmployee struct {
	ID                string
	WorkBranchID      *string
	FullName          string
	Role              string
	PhoneNumber       *string
	Status            Status
	QIDNumber         *string
	QIDExpiry         *time.Time
	MedicalCardExpiry *time.Time
	Documents         document.Set
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// TempEmployeeWithBranch joins the work-location branch name.
type TempEmployeeWithBranch struct {
	TempEmployee
	WorkBranchName string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DocumentTypes lists the tracked document-type keys for temp employees.
var DocumentTypes = []string{"qid", "medical_card"}

// ExpiryFields maps each tracked document to its expiry date accessor.
var ExpiryFields = []expiry.FieldSpec[TempEmployeeWithBranch]{
	{Key: "qid", Label: "QID", Value: func(t TempEmployeeWithBranch) string { return expiry.FormatDate(t.QIDExpiry) }},
	{Key: "medical_card", Label: "Medical Card", Value: func(t TempEmployeeWithBranch) string { return expiry.FormatDate(t.MedicalCardExpiry) }},
}

// ExpiryOwner identifies a temp employee in classified document rows.
func ExpiryOwner(t TempEmployeeWithBranch) expiry.Owner {
	return expiry.Owner{ID: t.ID, Name: t.FullName, Kind: expiry.OwnerTempEmployee, Location: t.WorkBranchName}
}
