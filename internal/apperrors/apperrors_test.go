package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityakx/sangam/backend/internal/apperrors"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.Unauthenticated("no token"), http.StatusUnauthorized},
		{apperrors.Forbidden("no access"), http.StatusForbidden},
		{apperrors.Invalid("bad input"), http.StatusBadRequest},
		{apperrors.NotFound("missing"), http.StatusNotFound},
		{apperrors.Conflict("already resolved"), http.StatusConflict},
		{apperrors.Internal(errors.New("db down"), "storage failure"), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, apperrors.HTTPStatus(tc.err))
	}
}

func TestReasonNeverLeaksCause(t *testing.T) {
	err := apperrors.Internal(errors.New("pq: connection refused"), "storage failure")
	assert.Equal(t, "storage failure", apperrors.Reason(err))
	assert.Equal(t, "internal server error", apperrors.Reason(errors.New("pq: connection refused")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("while accepting: %w", apperrors.Conflict("already resolved"))
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Equal(t, "already resolved", apperrors.Reason(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := apperrors.Internal(cause, "storage failure")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db down")
}
