package expenditure

import "context"

type ExpenditureService interface {
	GetExpenditure(ctx context.Context, id string) (ExpenditureResponse, error)
	ListExpenditures(ctx context.Context, req ListExpendituresRequest) (ListExpendituresResponse, error)
	CreateExpenditure(ctx context.Context, req CreateExpenditureRequest) (ExpenditureResponse, error)
	UpdateExpenditure(ctx context.Context, req UpdateExpenditureRequest) (ExpenditureResponse, error)
	DeleteExpenditure(ctx context.Context, id string) error
}
