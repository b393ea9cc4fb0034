package errors

import "errors"

var (
	ErrServerNotFound       = errors.New("server not found")
	ErrMissingInstanceID    = errors.New("server record has no ec2 instance id")
	ErrEmptyCommandResponse = errors.New("ssm send command returned no command")
)
