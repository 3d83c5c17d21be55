package branch

import "errors"

var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrBranchNameExists    = errors.New("branch name already exists")
	ErrInvalidDocumentType = errors.New("unknown document type")
)
