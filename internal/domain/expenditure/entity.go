package expenditure

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expenditure struct {
	ID          string
	BranchID    string
	Category    Category
	Description string
	Amount      decimal.Decimal
	SpentAt     time.Time
	RecordedBy  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// ExpenditureWithBranch joins the branch name for list views.
type ExpenditureWithBranch struct {
	Expenditure
	BranchName string
}

type Category string

const (
	CategoryMaintenance Category = "maintenance"
	CategoryFuel        Category = "fuel"
	CategorySupplies    Category = "supplies"
	CategoryUtilities   Category = "utilities"
	CategoryRenewal     Category = "renewal"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMaintenance, CategoryFuel, CategorySupplies,
		CategoryUtilities, CategoryRenewal, CategoryOther:
		return true
	}
	return false
}
