package catalog

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the catalog error categories surfaced by the core.
type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeInvalidPagination ErrorCode = "INVALID_PAGINATION_REQUEST"
	ErrCodeDataIntegrity     ErrorCode = "DATA_INTEGRITY"
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
)

// Sentinels for errors.Is checks. A sentinel without a message matches every
// DomainError carrying the same code.
var (
	ErrNotFound       = &DomainError{Code: ErrCodeNotFound}
	ErrNoMoreResults  = &DomainError{Code: ErrCodeInvalidPagination}
	ErrDataIntegrity  = &DomainError{Code: ErrCodeDataIntegrity}
	ErrInvalidDataset = &DomainError{Code: ErrCodeValidation}
)

// DomainError represents a typed catalog error enriched with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a DomainError with the same code. A target
// with an empty message acts as a category sentinel.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) || e == nil || domainErr == nil {
		return false
	}
	if e.Code != domainErr.Code {
		return false
	}
	return domainErr.Message == "" || e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newNotFoundError(id string) *DomainError {
	return newDomainError(ErrCodeNotFound, fmt.Sprintf("book %q not found", id), nil, map[string]interface{}{
		"book_id": id,
	})
}

// newMissingAuthorError reports a book whose author id has no display name.
// It is classified as NotFound for the affected book and wraps the integrity
// fault so callers can tell the two apart.
func newMissingAuthorError(bookID, authorID string) *DomainError {
	cause := newDomainError(ErrCodeDataIntegrity, fmt.Sprintf("author %q has no display name", authorID), nil, nil)
	return newDomainError(ErrCodeNotFound, fmt.Sprintf("book %q cannot be displayed", bookID), cause, map[string]interface{}{
		"book_id":   bookID,
		"author_id": authorID,
	})
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeValidation, message, nil, context)
}
