package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrDuplicateEmail = errors.New("email already registered")
)

// DependentDishesError rejects deleting a category that still owns dishes.
type DependentDishesError struct {
	Count int
}

func (e *DependentDishesError) Error() string {
	return fmt.Sprintf("category has %d dishes; delete or move them first", e.Count)
}
