package vacation

import "errors"

var (
	ErrVacationNotFound    = errors.New("vacation not found")
	ErrInvalidDuration     = errors.New("invalid duration code")
	ErrOverlappingVacation = errors.New("employee already has a vacation in this period")
)
