package post

import (
	"errors"
	"fmt"
)

// Entity - имя сущности в сообщениях об ошибках.
const Entity = "Post"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage failure")
)

type NotFoundError struct {
	Entity string
	ID     int
}

func NewNotFoundError(id int) *NotFoundError {
	return &NotFoundError{Entity: Entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id of %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: field %q %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError оборачивает любую ошибку хранилища, кроме отсутствия записи.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
