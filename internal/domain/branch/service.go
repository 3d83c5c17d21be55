package branch

import (
	"context"

	"github.com/hayatfoods/hrfleet-backend-go/internal/domain/document"
)

type BranchService interface {
	GetBranch(ctx context.Context, id string) (BranchResponse, error)
	ListBranches(ctx context.Context, req ListBranchesRequest) (ListBranchesResponse, error)
	CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	UpdateBranch(ctx context.Context, req UpdateBranchRequest) (BranchResponse, error)
	DeleteBranch(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req UploadDocumentRequest) (document.UploadResponse, error)
}
