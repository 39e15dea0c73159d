package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a chef or recipe does not exist
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists is returned when creating a chef whose Firebase id is taken
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrForbidden is returned when the caller does not own the recipe
	ErrForbidden = errors.New("not the owner of this recipe")
	// ErrInvalidInput is matched by every *ValidationError
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidToken is returned for missing, malformed or expired tokens
	ErrInvalidToken = errors.New("invalid auth token")
)

// ValidationError describes a rejected request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func notFound(err error, what string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %v", ErrNotFound, what, id)
	}
	return err
}
