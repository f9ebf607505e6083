// errors/department_errors.go
package errors

import "errors"

var (
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrDepartmentConflict    = errors.New("department conflict")
	ErrInvalidDepartmentData = errors.New("invalid department data")
)
