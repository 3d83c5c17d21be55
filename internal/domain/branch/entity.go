package branch

import (
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
)

type Branch struct {
	ID                  string
	Name                string
	Location            string
	ManagerName         *string
	ContactNumber       *string
	CRExpiry            *time.Time
	RuksaExpiry         *time.Time
	ComputerCardExpiry  *time.Time
	CertificationExpiry *time.Time
	Documents           document.Set
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// BranchWithCounts joins per-branch headcounts for list views.
type BranchWithCounts struct {
	Branch
	EmployeeCount int
	VehicleCount  int
}

// DocumentTypes lists the tracked license/document keys for branches.
var DocumentTypes = []string{"cr", "ruksa", "computer_card", "certification"}

// ExpiryFields maps each tracked license to its expiry date accessor.
var ExpiryFields = []expiry.FieldSpec[BranchWithCounts]{
	{Key: "cr", Label: "CR", Value: func(b BranchWithCounts) string { return expiry.FormatDate(b.CRExpiry) }},
	{Key: "ruksa", Label: "Ruksa", Value: func(b BranchWithCounts) string { return expiry.FormatDate(b.RuksaExpiry) }},
	{Key: "computer_card", Label: "Computer Card", Value: func(b BranchWithCounts) string { return expiry.FormatDate(b.ComputerCardExpiry) }},
	{Key: "certification", Label: "Certification", Value: func(b BranchWithCounts) string { return expiry.FormatDate(b.CertificationExpiry) }},
}

// ExpiryOwner identifies a branch in classified document rows.
func ExpiryOwner(b BranchWithCounts) expiry.Owner {
	return expiry.Owner{ID: b.ID, Name: b.Name, Kind: expiry.OwnerBranch, Location: b.Location}
}
