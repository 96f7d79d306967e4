package services

import (
	"errors"

	"gorm.io/gorm"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// isNotFound reports whether err is the store's record-not-found condition.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
