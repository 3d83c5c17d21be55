package vehicle

import "errors"

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrLicenseNumberExists = errors.New("license number already exists")
	ErrSameBranchTransfer  = errors.New("vehicle already belongs to target branch")
)
