package report

import "errors"

var ErrInvalidView = errors.New("view must be expired or expiring")
