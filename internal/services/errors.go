package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrThreatReportNotFound = errors.New("threat report not found")
)

// DuplicateUserError is returned when a username or email is already taken.
type DuplicateUserError struct {
	Field string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user with this %s already exists", e.Field)
}
