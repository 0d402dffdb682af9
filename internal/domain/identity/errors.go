package identity

import "errors"

var (
	ErrNotFound           = errors.New("employee not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrDepartmentNotFound = errors.New("department not found")
)
