package service

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

type fakeTimeout struct{}

func (fakeTimeout) Error() string   { return "i/o timeout" }
func (fakeTimeout) Timeout() bool   { return true }
func (fakeTimeout) Temporary() bool { return true }

var _ net.Error = fakeTimeout{}

func TestClassifyStorageError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"no rows", sql.ErrNoRows, appErrors.ErrNotFound.Code, http.StatusNotFound},
		{"wrapped no rows", fmt.Errorf("find advocate: %w", sql.ErrNoRows), appErrors.ErrNotFound.Code, http.StatusNotFound},
		{"unique violation", &pq.Error{Code: "23505", Constraint: "advocates_phone_number_key"}, appErrors.ErrConflict.Code, http.StatusConflict},
		{"wrapped unique violation", fmt.Errorf("insert advocate: %w", &pq.Error{Code: "23505"}), appErrors.ErrConflict.Code, http.StatusConflict},
		{"connection exception class", &pq.Error{Code: "08006"}, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"admin shutdown", &pq.Error{Code: "57P01"}, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"too many connections", &pq.Error{Code: "53300"}, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"bad conn", driver.ErrBadConn, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"refused dial", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"network timeout", fakeTimeout{}, appErrors.ErrUnavailable.Code, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), appErrors.ErrInternal.Code, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyStorageError(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantCode, got.Code)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestClassifyStorageErrorPassesTypedErrorsThrough(t *testing.T) {
	typed := appErrors.ErrValidation.WithDetails([]string{"limit: must be an integer between 1 and 100"})
	got := classifyStorageError(fmt.Errorf("wrapped: %w", typed))
	require.NotNil(t, got)
	assert.Equal(t, appErrors.ErrValidation.Code, got.Code)
	assert.Equal(t, typed.Details, got.Details)
}

func TestClassifyStorageErrorNil(t *testing.T) {
	assert.Nil(t, classifyStorageError(nil))
}

func TestClassifyStorageErrorKeepsCause(t *testing.T) {
	cause := &pq.Error{Code: "23505"}
	got := classifyStorageError(fmt.Errorf("insert advocate: %w", cause))
	require.NotNil(t, got)

	var pqErr *pq.Error
	require.True(t, errors.As(got, &pqErr))
	assert.Equal(t, pq.ErrorCode("23505"), pqErr.Code)
}
