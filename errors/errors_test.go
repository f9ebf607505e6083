package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
)

func TestPermissionError(t *testing.T) {
	err := docflow_errors.Denied("approve", "doc-1", "assigned to another user (mgr-2)")
	err.BlockingUserID = "mgr-2"

	wrapped := fmt.Errorf("approve failed: %w", err)

	assert.True(t, errors.Is(wrapped, docflow_errors.ErrPermissionDenied))
	var permErr *docflow_errors.PermissionError
	assert.True(t, errors.As(wrapped, &permErr))
	assert.Equal(t, "mgr-2", permErr.BlockingUserID)
	assert.Equal(t, "cannot approve document doc-1: assigned to another user (mgr-2)", err.Error())
}

func TestValidation(t *testing.T) {
	err := docflow_errors.Validation("department name cannot be empty")
	assert.True(t, errors.Is(err, docflow_errors.ErrValidation))
	assert.Contains(t, err.Error(), "department name cannot be empty")
}
