package tempemployee

import "errors"

var (
	ErrTempEmployeeNotFound = errors.New("temp employee not found")
	ErrInvalidDocumentType  = errors.New("unknown document type")
)
