package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError describes a failed backend call. ResponseMessage carries the
// structured message from the response body when the backend sent one;
// Message is the generic description of the failure.
type RequestError struct {
	Method          string
	Path            string
	StatusCode      int
	Message         string
	ResponseMessage string
	Body            []byte
	Err             error
}

func (e *RequestError) Error() string {
	if e.ResponseMessage != "" {
		return fmt.Sprintf("%s %s: %s (%d)", e.Method, e.Path, e.ResponseMessage, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newResponseError(method, path string, status int, body []byte) *RequestError {
	return &RequestError{
		Method:          method,
		Path:            path,
		StatusCode:      status,
		Message:         fmt.Sprintf("request failed with status code %d", status),
		ResponseMessage: extractMessage(body),
		Body:            body,
	}
}

// extractMessage pulls "message" out of an error body. Validation errors
// from the backend send it as a list of strings.
func extractMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var list []string
	if err := json.Unmarshal(payload.Message, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				parts = append(parts, item)
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}
