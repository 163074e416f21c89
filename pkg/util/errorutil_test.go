package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	err := NewNotApproved()
	de := ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_APPROVED", de.Code)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)
}

func TestToDomainError_MapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainError_MapsUniqueViolation(t *testing.T) {
	de := ToDomainError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	require.NotNil(t, de)
	assert.Equal(t, "DUPLICATE_EMAIL", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
}

func TestToDomainError_MapsFiberErrors(t *testing.T) {
	de := ToDomainError(fiber.NewError(http.StatusNotFound, "Cannot GET /nope"))
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainError_HidesInternalDetail(t *testing.T) {
	de := ToDomainError(errors.New("pq: connection refused"))
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, "internal server error", de.Message)
}
