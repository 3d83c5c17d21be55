package employee

import (
	"mime/multipart"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	BranchID          *string `json:"branch_id,omitempty"`
	FullName          string  `json:"full_name"`
	Role              string  `json:"role"`
	Nationality       *string `json:"nationality,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Email             *string `json:"email,omitempty"`
	JoinDate          *string `json:"join_date,omitempty"`
	QIDNumber         *string `json:"qid_number,omitempty"`
	QIDExpiry         *string `json:"qid_expiry,omitempty"`
	PassportNumber    *string `json:"passport_number,omitempty"`
	PassportExpiry    *string `json:"passport_expiry,omitempty"`
	VisaExpiry        *string `json:"visa_expiry,omitempty"`
	MedicalCardExpiry *string `json:"medical_card_expiry,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number format is invalid",
		})
	}

	if r.QIDNumber != nil && *r.QIDNumber != "" && !validator.IsValidQID(*r.QIDNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "qid_number",
			Message: "qid_number must be exactly 11 digits",
		})
	}

	errs = append(errs, validateOptionalDates(map[string]*string{
		"join_date":           r.JoinDate,
		"qid_expiry":          r.QIDExpiry,
		"passport_expiry":     r.PassportExpiry,
		"visa_expiry":         r.VisaExpiry,
		"medical_card_expiry": r.MedicalCardExpiry,
	})...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string  `json:"-"`
	BranchID          *string `json:"branch_id,omitempty"`
	FullName          *string `json:"full_name,omitempty"`
	Role              *string `json:"role,omitempty"`
	Nationality       *string `json:"nationality,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Email             *string `json:"email,omitempty"`
	JoinDate          *string `json:"join_date,omitempty"`
	Status            *string `json:"status,omitempty"`
	QIDNumber         *string `json:"qid_number,omitempty"`
	QIDExpiry         *string `json:"qid_expiry,omitempty"`
	PassportNumber    *string `json:"passport_number,omitempty"`
	PassportExpiry    *string `json:"passport_expiry,omitempty"`
	VisaExpiry        *string `json:"visa_expiry,omitempty"`
	MedicalCardExpiry *string `json:"medical_card_expiry,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.QIDNumber != nil && *r.QIDNumber != "" && !validator.IsValidQID(*r.QIDNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "qid_number",
			Message: "qid_number must be exactly 11 digits",
		})
	}

	errs = append(errs, validateOptionalDates(map[string]*string{
		"join_date":           r.JoinDate,
		"qid_expiry":          r.QIDExpiry,
		"passport_expiry":     r.PassportExpiry,
		"visa_expiry":         r.VisaExpiry,
		"medical_card_expiry": r.MedicalCardExpiry,
	})...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateOptionalDates checks every provided, non-empty date field for
// YYYY-MM-DD format.
func validateOptionalDates(fields map[string]*string) validator.ValidationErrors {
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

// ListEmployeesRequest carries the search/filter/sort/page state of the
// employee table.
type ListEmployeesRequest struct {
	Search   string
	Status   string
	BranchID string
	Role     string
	SortKey  string
	SortDir  listkit.SortDir
	Page     int
	PageSize int
}

type EmployeeResponse struct {
	ID                string       `json:"id"`
	BranchID          *string      `json:"branch_id,omitempty"`
	BranchName        string       `json:"branch_name,omitempty"`
	FullName          string       `json:"full_name"`
	Role              string       `json:"role"`
	Nationality       *string      `json:"nationality,omitempty"`
	PhoneNumber       *string      `json:"phone_number,omitempty"`
	Email             *string      `json:"email,omitempty"`
	JoinDate          *string      `json:"join_date,omitempty"`
	Status            string       `json:"status"`
	QIDNumber         *string      `json:"qid_number,omitempty"`
	QIDExpiry         *string      `json:"qid_expiry,omitempty"`
	PassportNumber    *string      `json:"passport_number,omitempty"`
	PassportExpiry    *string      `json:"passport_expiry,omitempty"`
	VisaExpiry        *string      `json:"visa_expiry,omitempty"`
	MedicalCardExpiry *string      `json:"medical_card_expiry,omitempty"`
	Documents         document.Set `json:"documents,omitempty"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// UploadDocumentRequest attaches one document file to an employee under a
// document-type key.
type UploadDocumentRequest struct {
	EmployeeID   string
	DocumentType string
	File         multipart.File
	FileHeader   *multipart.FileHeader
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type must be one of qid, passport, visa, medical_card",
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
