package vacation

import "time"

type Vacation struct {
	ID           string
	EmployeeID   string
	DurationCode string
	StartDate    time.Time
	EndDate      time.Time
	Reason       *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// VacationWithEmployee joins the employee's name, qid and branch for list views.
type VacationWithEmployee struct {
	Vacation
	EmployeeName string
	EmployeeQID  string
	BranchName   string
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CurrentStatus derives the effective status from the date range. A
// cancelled vacation stays cancelled regardless of dates.
func (v Vacation) CurrentStatus(today time.Time) Status {
	if v.Status == StatusCancelled {
		return StatusCancelled
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(v.StartDate):
		return StatusScheduled
	case day.After(v.EndDate):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}
