package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoCredentials is returned by write operations on a client that was
// constructed without an API key.
var ErrNoCredentials = errors.New("no credentials configured")

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidToken is returned when the server rejects the configured
// API key.
var ErrInvalidToken = errors.New("invalid token")

// statusError maps a non-success response to a sentinel or descriptive
// error, preferring the server's own error message when it sent one.
func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidToken
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return fmt.Errorf("server error (status %d): %s", resp.StatusCode, body.Message)
		}
		if body.Error != "" {
			return fmt.Errorf("server error (status %d): %s", resp.StatusCode, body.Error)
		}
	}
	return fmt.Errorf("server error (status %d)", resp.StatusCode)
}
