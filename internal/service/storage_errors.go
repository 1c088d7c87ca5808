package service

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"syscall"

	"github.com/lib/pq"

	appErrors "github.com/careloop/advocates-api/pkg/errors"
)

// classifyStorageError maps storage failures onto the API error taxonomy
// at a single boundary so status codes stay consistent across endpoints.
// Uniqueness violations become conflicts, connectivity failures become
// unavailable, missing rows become not found, anything else is internal.
func classifyStorageError(err error) *appErrors.Error {
	if err == nil {
		return nil
	}

	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, appErrors.ErrConflict.Message)
		case pqErr.Code.Class() == "08",
			pqErr.Code == "53300",
			pqErr.Code == "57P01",
			pqErr.Code == "57P02",
			pqErr.Code == "57P03":
			return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrUnavailable.Message)
		}
	}

	if errors.Is(err, driver.ErrBadConn) || isConnectivityError(err) {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrUnavailable.Message)
	}

	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
}

func isConnectivityError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
