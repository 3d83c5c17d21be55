package vacation

import (
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID   string  `json:"employee_id"`
	DurationCode string  `json:"duration_code"`
	StartDate    string  `json:"start_date"`
	Reason       *string `json:"reason,omitempty"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !ValidDurationCode(r.DurationCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_code",
			Message: "duration_code must be one of 1week, 2weeks, 1month, 2months, 3months, 6months, 1year",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateVacationRequest struct {
	ID           string  `json:"-"`
	DurationCode *string `json:"duration_code,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.DurationCode != nil && !ValidDurationCode(*r.DurationCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_code",
			Message: "duration_code must be one of 1week, 2weeks, 1month, 2months, 3months, 6months, 1year",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of scheduled, ongoing, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListVacationsRequest struct {
	Search     string
	EmployeeID string
	Status     string
	SortKey    string
	SortDir    listkit.SortDir
	Page       int
	PageSize   int
}

type VacationResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeQID  string  `json:"employee_qid,omitempty"`
	BranchName   string  `json:"branch_name,omitempty"`
	DurationCode string  `json:"duration_code"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListVacationsResponse struct {
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Vacations  []VacationResponse `json:"vacations"`
}
