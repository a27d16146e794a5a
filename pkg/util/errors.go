// Package util provides logging and common error types.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tool's failure taxonomy
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrOutOfSync        = errors.New("project networking out of sync")
	ErrNotFound         = errors.New("resource not found")
	ErrUnknownResource  = errors.New("unknown resource kind")
)

// UnknownResourceError is returned when a value reaches the
// classification layer that is not one of the recognized resource kinds.
type UnknownResourceError struct {
	Kind string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource kind %q", e.Kind)
}

func (e *UnknownResourceError) Unwrap() error {
	return ErrUnknownResource
}

// NewUnknownResourceError creates an unknown-resource error
func NewUnknownResourceError(kind string) *UnknownResourceError {
	return &UnknownResourceError{Kind: kind}
}

// NotFoundError records which resource a lookup failed to find
type NotFoundError struct {
	ResourceType string
	ID           string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.ResourceType, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(resourceType, id string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ID: id}
}
