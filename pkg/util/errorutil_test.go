package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewBusinessRule("FLIGHT_CANCELLED", "cannot purchase: this flight is cancelled")

	mapped := ToDomainError(original)
	assert.Equal(t, "FLIGHT_CANCELLED", mapped.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, mapped.HTTPStatus)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("connection reset")
	mapped := ToDomainError(cause)

	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorIs(t, mapped, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError(cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, domainErr.Error(), "root cause")
}
