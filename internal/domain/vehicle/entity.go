package vehicle

import "time"

type Vehicle struct {
	ID              string
	BranchID        string
	LicenseNumber   string
	Model           string
	Make            *string
	Year            *int
	LicenseExpiry   *time.Time
	InsuranceExpiry *time.Time
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// VehicleWithBranch joins the owning branch name for list views.
type VehicleWithBranch struct {
	Vehicle
	BranchName string
}

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}
