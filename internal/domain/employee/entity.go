package employee

import (
	"time"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/expiry"
)

type Employee struct {
	ID                string
	BranchID          *string
	FullName          string
	Role              string
	Nationality       *string
	PhoneNumber       *string
	Email             *string
	JoinDate          *time.Time
	Status            Status
	QIDNumber         *string
	QIDExpiry         *time.Time
	PassportNumber    *string
	PassportExpiry    *time.Time
	VisaExpiry        *time.Time
	MedicalCardExpiry *time.Time
	Documents         document.Set
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// EmployeeWithBranch joins the branch name for list and detail responses.
type EmployeeWithBranch struct {
	Employee
	BranchName string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DocumentTypes lists the tracked document-type keys for employees.
var DocumentTypes = []string{"qid", "passport", "visa", "medical_card"}

// ExpiryFields maps each tracked document to its expiry date accessor for
// classification.
var ExpiryFields = []expiry.FieldSpec[EmployeeWithBranch]{
	{Key: "qid", Label: "QID", Value: func(e EmployeeWithBranch) string { return expiry.FormatDate(e.QIDExpiry) }},
	{Key: "passport", Label: "Passport", Value: func(e EmployeeWithBranch) string { return expiry.FormatDate(e.PassportExpiry) }},
	{Key: "visa", Label: "Visa", Value: func(e EmployeeWithBranch) string { return expiry.FormatDate(e.VisaExpiry) }},
	{Key: "medical_card", Label: "Medical Card", Value: func(e EmployeeWithBranch) string { return expiry.FormatDate(e.MedicalCardExpiry) }},
}

// ExpiryOwner identifies an employee in classified document rows.
func ExpiryOwner(e EmployeeWithBranch) expiry.Owner {
	return expiry.Owner{ID: e.ID, Name: e.FullName, Kind: expiry.OwnerEmployee, Location: e.BranchName}
}
