package apperrors

import (
	"errors"
)

var (
	ErrServerNotFound       = errors.New("server not found")
	ErrMissingLaunchParams  = errors.New("server record is missing provisioning parameters")
	ErrEmptySpotRequestList = errors.New("provisioning api returned no spot request")
)
