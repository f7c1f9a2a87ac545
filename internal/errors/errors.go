package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrWorkbookLoad is returned when the input workbook cannot be opened or parsed
	ErrWorkbookLoad = errors.New("workbook load failed")

	// ErrProjectNotFound is returned when a cluster project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrNoAnalysis is returned when results are requested before an analysis has run
	ErrNoAnalysis = errors.New("no analysis available")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// WorkbookLoadError represents a fatal workbook load failure with context
type WorkbookLoadError struct {
	Path string
	Err  error
}

func (e *WorkbookLoadError) Error() string {
	return fmt.Sprintf("failed to load workbook '%s': %v", e.Path, e.Err)
}

func (e *WorkbookLoadError) Unwrap() error {
	return e.Err
}

func (e *WorkbookLoadError) Is(target error) bool {
	return target == ErrWorkbookLoad
}

// NewWorkbookLoadError creates a new WorkbookLoadError
func NewWorkbookLoadError(path string, err error) *WorkbookLoadError {
	return &WorkbookLoadError{Path: path, Err: err}
}

// ProjectNotFoundError represents a cluster project lookup miss with context
type ProjectNotFoundError struct {
	Code string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("cluster project with code '%s' not found", e.Code)
}

func (e *ProjectNotFoundError) Is(target error) bool {
	return target == ErrProjectNotFound
}

// NewProjectNotFoundError creates a new ProjectNotFoundError
func NewProjectNotFoundError(code string) *ProjectNotFoundError {
	return &ProjectNotFoundError{Code: code}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
