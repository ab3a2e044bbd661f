package repo

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the repository. Message carries the
// server-supplied message verbatim; Issues is only populated for validation
// failures (400).
type APIError struct {
	Status  int
	Message string
	Issues  []ValidationIssue
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("repository: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("repository: unexpected status %d", e.Status)
}

// IsUnauthenticated reports whether err is a 401 from the repository.
func IsUnauthenticated(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 from the repository.
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsConflict reports whether err is a 409, i.e. a version or namespace
// collision.
func IsConflict(err error) bool { return statusIs(err, http.StatusConflict) }

// IsValidation reports whether err is a 400 with structured issues.
func IsValidation(err error) bool { return statusIs(err, http.StatusBadRequest) }

func statusIs(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// ServerMessage extracts the server-supplied message from err, or falls back
// to the plain error text for transport failures.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IssuesOf returns the validation issues attached to err, if any.
func IssuesOf(err error) []ValidationIssue {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Issues
	}
	return nil
}
