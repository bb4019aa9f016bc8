package app

import (
	"errors"
	"fmt"
	"net/http"

	"vitrine/internal/authclient"
	"vitrine/internal/catalogclient"
	"vitrine/internal/sellerclient"
)

var (
	// ErrNotSignedIn indicates an operation that needs a session.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrDeleteDeclined indicates the user refused the delete confirmation.
	ErrDeleteDeclined = errors.New("delete declined")
)

// ValidationError reports a missing or malformed local field, caught
// before any network call happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthError reports rejected credentials or an expired token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NetworkError reports a failed request or a non-2xx response that is
// not an auth rejection.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// classify maps client-level errors onto the user-facing taxonomy.
// 401/403 responses become AuthError, everything else NetworkError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if status, msg, ok := apiStatus(err); ok {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return &AuthError{Message: msg}
		}
	}
	return &NetworkError{Op: op, Err: err}
}

func apiStatus(err error) (int, string, bool) {
	var authErr *authclient.APIError
	if errors.As(err, &authErr) {
		return authErr.Status, authErr.Message, true
	}
	var catErr *catalogclient.APIError
	if errors.As(err, &catErr) {
		return catErr.Status, catErr.Message, true
	}
	var sellerErr *sellerclient.APIError
	if errors.As(err, &sellerErr) {
		return sellerErr.Status, sellerErr.Message, true
	}
	return 0, "", false
}
