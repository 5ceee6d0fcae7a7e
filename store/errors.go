package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is the JSON error envelope the store returns for non-2xx
// responses.
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s (code=%d, type=%s)", e.Message, e.Code, e.Type)
}

// IsNotFound reports whether err is a store error with HTTP code 404.
// Deleting an already-deleted record surfaces as one of these.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// checkResponse turns a non-2xx response into an *Error. The body is
// consumed either way.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	se := &Error{Code: resp.StatusCode, Type: "unknown", Message: http.StatusText(resp.StatusCode)}
	if err := json.Unmarshal(body, se); err != nil && len(body) > 0 {
		se.Message = string(body)
	}
	if se.Code == 0 {
		se.Code = resp.StatusCode
	}
	return se
}
