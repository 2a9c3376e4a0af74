package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSignInRedirect is returned when Azure DevOps responds with
// 203 (Non-Authoritative Information) and a sign-in page instead of the
// requested resource. This is how an invalid or expired personal access token
// is reported.
var ErrSignInRedirect = errors.New("azure devops redirected to sign-in page: check the personal access token")

// Non2xxStatusError represents a failed request response where the HTTP status
// code was non-2xx, meaning not 200 (OK), not 201 (Created), etc.
type Non2xxStatusError struct {
	Status     string
	StatusCode int
	// Message, TypeKey and ErrorCode are filled from the Azure DevOps error
	// body, if the response contained one.
	Message   string
	TypeKey   string
	ErrorCode int
}

// Error adds compliance to the error interface.
func (err Non2xxStatusError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("non-2xx HTTP status: %s: %s", err.Status, err.Message)
	}
	return fmt.Sprintf("non-2xx HTTP status: %s", err.Status)
}

// IsNotFound returns true if the error is a Non2xxStatusError with status
// code 404 (Not Found).
func IsNotFound(err error) bool {
	var statusErr Non2xxStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Message   string `json:"message"`
	TypeName  string `json:"typeName"`
	TypeKey   string `json:"typeKey"`
	ErrorCode int    `json:"errorCode"`
}

func newNon2xxStatusError(resp *http.Response, body []byte) error {
	err := Non2xxStatusError{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
	}
	var azErr errorBody
	if json.Unmarshal(body, &azErr) == nil {
		err.Message = azErr.Message
		err.TypeKey = azErr.TypeKey
		err.ErrorCode = azErr.ErrorCode
	}
	return err
}
