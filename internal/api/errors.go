package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HTTPError carries the status and server-provided message of a non-2xx
// response. Domain services propagate it unchanged; only screen-level code
// decides user-facing behavior.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// AsHTTPError unwraps err into an *HTTPError if one is in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var herr *HTTPError
	ok := errors.As(err, &herr)
	return herr, ok
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newHTTPError(status int, body []byte) *HTTPError {
	var parsed errorBody
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			message = parsed.Message
		} else if parsed.Error != "" {
			message = parsed.Error
		}
	}
	return &HTTPError{Status: status, Message: message}
}

// Backend variants of the "email not verified" 401, which must propagate
// without triggering a forced logout.
var unverifiedEmailPatterns = []string{
	"not been verified",
	"email not verified",
	"no ha sido verificado",
}

func isUnverifiedEmail(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range unverifiedEmailPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
