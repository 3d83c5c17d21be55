package tempemployee

import (
	"mime/multipart"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateTempEmployeeRequest struct {
	WorkBranchID      *string `json:"work_branch_id,omitempty"`
	FullName          string  `json:"full_name"`
	Role              string  `json:"role"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	QIDNumber         *string `json:"qid_number,omitempty"`
	QIDExpiry         *string `json:"qid_expiry,omitempty"`
	MedicalCardExpiry *string `json:"medical_card_expiry,omitempty"`
}

func (r *CreateTempEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.QIDNumber != nil && *r.QIDNumber != "" && !validator.IsValidQID(*r.QIDNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "qid_number",
			Message: "qid_number must be exactly 11 digits",
		})
	}

	for field, value := range map[string]*string{
		"qid_expiry":          r.QIDExpiry,
		"medical_card_expiry": r.MedicalCardExpiry,
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTempEmployeeRequest struct {
	ID                string  `json:"-"`
	WorkBranchID      *string `json:"work_branch_id,omitempty"`
	FullName          *string `json:"full_name,omitempty"`
	Role              *string `json:"role,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Status            *string `json:"status,omitempty"`
	QIDNumber         *string `json:"qid_number,omitempty"`
	QIDExpiry         *string `json:"qid_expiry,omitempty"`
	MedicalCardExpiry *string `json:"medical_card_expiry,omitempty"`
}

func (r *UpdateTempEmployeeRequest) Validate() error {
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

	for field, value := range map[string]*string{
		"qid_expiry":          r.QIDExpiry,
		"medical_card_expiry": r.MedicalCardExpiry,
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListTempEmployeesRequest struct {
	Search       string
	Status       string
	WorkBranchID string
	SortKey      string
	SortDir      listkit.SortDir
	Page         int
	PageSize     int
}

type TempEmployeeResponse struct {
	ID                string       `json:"id"`
	WorkBranchID      *string      `json:"work_branch_id,omitempty"`
	WorkBranchName    string       `json:"work_branch_name,omitempty"`
	FullName          string       `json:"full_name"`
	Role              string       `json:"role"`
	PhoneNumber       *string      `json:"phone_number,omitempty"`
	Status            string       `json:"status"`
	QIDNumber         *string      `json:"qid_number,omitempty"`
	QIDExpiry         *string      `json:"qid_expiry,omitempty"`
	MedicalCardExpiry *string      `json:"medical_card_expiry,omitempty"`
	Documents         document.Set `json:"documents,omitempty"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

type ListTempEmployeesResponse struct {
	TotalCount    int                    `json:"total_count"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
	TotalPages    int                    `json:"total_pages"`
	TempEmployees []TempEmployeeResponse `json:"temp_employees"`
}

type UploadDocumentRequest struct {
	TempEmployeeID string
	DocumentType   string
	File           multipart.File
	FileHeader     *multipart.FileHeader
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TempEmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "temp_employee_id",
			Message: "temp_employee_id is required",
		})
	}

	if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type must be one of qid, medical_card",
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
