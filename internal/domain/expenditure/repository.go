package expenditure

import "context"

type ExpenditureRepository interface {
	GetByID(ctx context.Context, id string) (ExpenditureWithBranch, error)
	List(ctx context.Context) ([]ExpenditureWithBranch, error)
	ListByBranch(ctx context.Context, branchID string) ([]ExpenditureWithBranch, error)
	Create(ctx context.Context, newExpenditure Expenditure) (Expenditure, error)
	Update(ctx context.Context, id string, req UpdateExpenditureRequest) error
	SoftDelete(ctx context.Context, id string) error
}
