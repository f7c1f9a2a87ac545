package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkbookLoadError(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewWorkbookLoadError("calls.xlsx", cause)

	assert.True(t, errors.Is(err, ErrWorkbookLoad))
	assert.True(t, errors.Is(err, cause), "should unwrap to the underlying cause")
	assert.Contains(t, err.Error(), "calls.xlsx")

	wrapped := fmt.Errorf("analysis aborted: %w", err)
	assert.True(t, errors.Is(wrapped, ErrWorkbookLoad))
}

func TestProjectNotFoundError(t *testing.T) {
	err := NewProjectNotFoundError("HORIZON-CL4-2024-DIGITAL-01-01")

	assert.True(t, errors.Is(err, ErrProjectNotFound))
	assert.False(t, errors.Is(err, ErrWorkbookLoad))
	assert.Contains(t, err.Error(), "HORIZON-CL4-2024-DIGITAL-01-01")
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("path", "path is required")
	assert.True(t, errors.Is(withField, ErrInvalidInput))
	assert.Contains(t, withField.Error(), "path")

	withoutField := NewValidationError("", "empty request")
	assert.True(t, errors.Is(withoutField, ErrInvalidInput))
	assert.Contains(t, withoutField.Error(), "empty request")
}
