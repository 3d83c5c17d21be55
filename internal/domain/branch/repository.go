package branch

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type BranchRepository interface {
	GetByID(ctx context.Context, id string) (BranchWithCounts, error)
	List(ctx context.Context) ([]BranchWithCounts, error)
	Create(ctx context.Context, newBranch Branch) (Branch, error)
	Update(ctx context.Context, id string, req UpdateBranchRequest) error
	SoftDelete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error)
	SetDocument(ctx context.Context, id string, documentType string, rec document.Record) error
}
