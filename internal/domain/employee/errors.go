package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrQIDExists           = errors.New("QID already registered")
	ErrInvalidDocumentType = errors.New("unknown document type")
)
