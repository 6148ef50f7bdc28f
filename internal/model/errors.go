package model

import (
	"errors"
	"fmt"
)

// Kind names the entity an error refers to.
type Kind string

const (
	KindCategory      Kind = "category"
	KindTask          Kind = "task"
	KindUser          Kind = "user"
	KindChecklistItem Kind = "checklist item"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrIDSpaceExhausted = errors.New("id space exhausted")
)

// NotFoundError reports an id that does not resolve within the project.
// For checklist items ID holds the item index.
type NotFoundError struct {
	Kind Kind
	ID   uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidReferenceError reports an operation that would leave a dangling
// reference, or a loaded document that already contains one.
type InvalidReferenceError struct {
	Kind   Kind
	ID     uint64
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("invalid %s reference: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s reference %d: %s", e.Kind, e.ID, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidReference) hold.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

func notFound(kind Kind, id uint64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a NotFoundError for the given kind.
// An empty kind matches any entity.
func IsNotFound(err error, kind Kind) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	return kind == "" || nf.Kind == kind
}
