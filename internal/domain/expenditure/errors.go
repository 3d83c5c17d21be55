package expenditure

import "errors"

var (
	ErrExpenditureNotFound = errors.New("expenditure not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
