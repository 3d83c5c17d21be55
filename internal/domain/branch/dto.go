package branch

import (
	"mime/multipart"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateBranchRequest struct {
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	ManagerName         *string `json:"manager_name,omitempty"`
	ContactNumber       *string `json:"contact_number,omitempty"`
	CRExpiry            *string `json:"cr_expiry,omitempty"`
	RuksaExpiry         *string `json:"ruksa_expiry,omitempty"`
	ComputerCardExpiry  *string `json:"computer_card_expiry,omitempty"`
	CertificationExpiry *string `json:"certification_expiry,omitempty"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if r.ContactNumber != nil && *r.ContactNumber != "" && !validator.IsValidPhoneNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact_number format is invalid",
		})
	}

	errs = append(errs, validateDocumentDates(map[string]*string{
		"cr_expiry":            r.CRExpiry,
		"ruksa_expiry":         r.RuksaExpiry,
		"computer_card_expiry": r.ComputerCardExpiry,
		"certification_expiry": r.CertificationExpiry,
	})...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBranchRequest struct {
	ID                  string  `json:"-"`
	Name                *string `json:"name,omitempty"`
	Location            *string `json:"location,omitempty"`
	ManagerName         *string `json:"manager_name,omitempty"`
	ContactNumber       *string `json:"contact_number,omitempty"`
	CRExpiry            *string `json:"cr_expiry,omitempty"`
	RuksaExpiry         *string `json:"ruksa_expiry,omitempty"`
	ComputerCardExpiry  *string `json:"computer_card_expiry,omitempty"`
	CertificationExpiry *string `json:"certification_expiry,omitempty"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	errs = append(errs, validateDocumentDates(map[string]*string{
		"cr_expiry":            r.CRExpiry,
		"ruksa_expiry":         r.RuksaExpiry,
		"computer_card_expiry": r.ComputerCardExpiry,
		"certification_expiry": r.CertificationExpiry,
	})...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDocumentDates(fields map[string]*string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, value := range fields {
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
	return errs
}

type ListBranchesRequest struct {
	Search   string
	Location string
	SortKey  string
	SortDir  listkit.SortDir
	Page     int
	PageSize int
}

type BranchResponse struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Location            string       `json:"location"`
	ManagerName         *string      `json:"manager_name,omitempty"`
	ContactNumber       *string      `json:"contact_number,omitempty"`
	CRExpiry            *string      `json:"cr_expiry,omitempty"`
	RuksaExpiry         *string      `json:"ruksa_expiry,omitempty"`
	ComputerCardExpiry  *string      `json:"computer_card_expiry,omitempty"`
	CertificationExpiry *string      `json:"certification_expiry,omitempty"`
	EmployeeCount       int          `json:"employee_count"`
	VehicleCount        int          `json:"vehicle_count"`
	Documents           document.Set `json:"documents,omitempty"`
	CreatedAt           string       `json:"created_at"`
	UpdatedAt           string       `json:"updated_at"`
}

type ListBranchesResponse struct {
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Branches   []BranchResponse `json:"branches"`
}

type UploadDocumentRequest struct {
	BranchID     string
	DocumentType string
	File         multipart.File
	FileHeader   *multipart.FileHeader
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type must be one of cr, ruksa, computer_card, certification",
		})
	}

	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
