package portalsdk

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the portal, carrying the error code
// and description from the JSON body when one was present.
type APIError struct {
	Status      int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("portal: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("portal: %s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Error codes returned by the portal API.
const (
	CodeInvalidInput       = "invalid_input"
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailExists        = "email_exists"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeRateLimited        = "rate_limited"
	CodeServiceUnavailable = "service_unavailable"
	CodeServerError        = "server_error"
)
