package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorMessage(t *testing.T) {
	bare := NewInvalidConfigError("passing_score out of range")
	assert.Equal(t, "passing_score out of range", bare.Error())
	assert.Equal(t, ErrInvalidConfig, bare.Code)

	wrapped := NewInputIOError("failed to read corpus file", fs.ErrNotExist)
	assert.Equal(t, "failed to read corpus file: file does not exist", wrapped.Error())
	assert.Equal(t, ErrInputIO, wrapped.Code)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := fs.ErrPermission
	err := NewInternalError("failed to encode quiz document", cause)

	assert.True(t, errors.Is(err, cause))

	var domainErr *DomainError
	require.ErrorAs(t, error(err), &domainErr)
	assert.Equal(t, ErrInternal, domainErr.Code)
}
