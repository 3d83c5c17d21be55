package expenditure

import (
	"github.com/shopspring/decimal"

	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/validator"
)

type CreateExpenditureRequest struct {
	BranchID    string          `json:"branch_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAt     string          `json:"spent_at"`
}

func (r *CreateExpenditureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if !Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of maintenance, fuel, supplies, utilities, renewal, other",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if validator.IsEmpty(r.SpentAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "spent_at",
			Message: "spent_at is required",
		})
	} else if _, ok := validator.IsValidDate(r.SpentAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "spent_at",
			Message: "spent_at must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExpenditureRequest struct {
	ID          string           `json:"-"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	SpentAt     *string          `json:"spent_at,omitempty"`
}

func (r *UpdateExpenditureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Category != nil && !Category(*r.Category).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of maintenance, fuel, supplies, utilities, renewal, other",
		})
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if r.SpentAt != nil {
		if _, ok := validator.IsValidDate(*r.SpentAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "spent_at",
				Message: "spent_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListExpendituresRequest struct {
	Search   string
	BranchID string
	Category string
	SortKey  string
	SortDir  listkit.SortDir
	Page     int
	PageSize int
}

type ExpenditureResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	BranchName  string          `json:"branch_name,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAt     string          `json:"spent_at"`
	RecordedBy  *string         `json:"recorded_by,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListExpendituresResponse struct {
	TotalCount   int                   `json:"total_count"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Expenditures []ExpenditureResponse `json:"expenditures"`
}
