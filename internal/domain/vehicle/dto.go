package vehicle

import (
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateVehicleRequest struct {
	BranchID        string  `json:"branch_id"`
	LicenseNumber   string  `json:"license_number"`
	Model           string  `json:"model"`
	Make            *string `json:"make,omitempty"`
	Year            *int    `json:"year,omitempty"`
	LicenseExpiry   *string `json:"license_expiry,omitempty"`
	InsuranceExpiry *string `json:"insurance_expiry,omitempty"`
	Status          string  `json:"status"`
}

func (r *CreateVehicleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if validator.IsEmpty(r.LicenseNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "license_number",
			Message: "license_number is required",
		})
	} else if !validator.IsValidPlate(r.LicenseNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "license_number",
			Message: "license_number must be 1 to 6 digits",
		})
	}

	if validator.IsEmpty(r.Model) {
		errs = append(errs, validator.ValidationError{
			Field:   "model",
			Message: "model is required",
		})
	}

	if r.Year != nil && (*r.Year < 1980 || *r.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	for field, value := range map[string]*string{
		"license_expiry":   r.LicenseExpiry,
		"insurance_expiry": r.InsuranceExpiry,
	} {
		if value == nil || *value == "" {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, maintenance, retired",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateVehicleRequest struct {
	ID              string  `json:"-"`
	LicenseNumber   *string `json:"license_number,omitempty"`
	Model           *string `json:"model,omitempty"`
	Make            *string `json:"make,omitempty"`
	Year            *int    `json:"year,omitempty"`
	LicenseExpiry   *string `json:"license_expiry,omitempty"`
	InsuranceExpiry *string `json:"insurance_expiry,omitempty"`
	Status          *string `json:"status,omitempty"`
}

func (r *UpdateVehicleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.LicenseNumber != nil && !validator.IsValidPlate(*r.LicenseNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "license_number",
			Message: "license_number must be 1 to 6 digits",
		})
	}

	for field, value := range map[string]*string{
		"license_expiry":   r.LicenseExpiry,
		"insurance_expiry": r.InsuranceExpiry,
	} {
		if value == nil || *value == "" {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, maintenance, retired",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TransferVehicleRequest moves a vehicle to a different branch.
type TransferVehicleRequest struct {
	VehicleID  string `json:"-"`
	ToBranchID string `json:"to_branch_id"`
}

func (r *TransferVehicleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VehicleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_id",
			Message: "vehicle_id is required",
		})
	}
	if validator.IsEmpty(r.ToBranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_branch_id",
			Message: "to_branch_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListVehiclesRequest struct {
	Search   string
	BranchID string
	Status   string
	SortKey  string
	SortDir  listkit.SortDir
	Page     int
	PageSize int
}

type VehicleResponse struct {
	ID              string  `json:"id"`
	BranchID        string  `json:"branch_id"`
	BranchName      string  `json:"branch_name,omitempty"`
	LicenseNumber   string  `json:"license_number"`
	Model           string  `json:"model"`
	Make            *string `json:"make,omitempty"`
	Year            *int    `json:"year,omitempty"`
	LicenseExpiry   *string `json:"license_expiry,omitempty"`
	InsuranceExpiry *string `json:"insurance_expiry,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ListVehiclesResponse struct {
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Vehicles   []VehicleResponse `json:"vehicles"`
}
