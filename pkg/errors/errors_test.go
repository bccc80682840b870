package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("resolve site: %w", NewNotFoundError("site s1 not found"))

	assert.Equal(t, ErrorTypeNotFound, TypeOf(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, ErrorTypeInternal, TypeOf(fmt.Errorf("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestAppError_Error(t *testing.T) {
	err := NewUnavailableError("database unreachable", fmt.Errorf("dial tcp: refused"))

	assert.Equal(t, "UNAVAILABLE: database unreachable: dial tcp: refused", err.Error())
	assert.Equal(t, "VALIDATION: start is required", NewValidationError("start is required").Error())
}
