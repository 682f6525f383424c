package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophspend/internal/common"
)

// Re-exported so callers of this package need not import common.
var (
	ErrUnavailable  = common.ErrUnavailable
	ErrUnauthorized = common.ErrUnauthorized
	ErrNotFound     = common.ErrNotFound
)

// User-facing messages for the two error classes that need rewording.
const (
	MsgNetwork        = "Unable to connect to the server. Please check your internet connection."
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgUnexpected     = "An unexpected error occurred. Please try again."
)

// APIError is a non-2xx response. Its message is the server's detail,
// verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is maps status codes onto the shared sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// parseDetail extracts the detail field. Besides the usual string it
// understands the list form validation failures use ([{"msg": ...}]).
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return string(envelope.Detail)
}

var networkMarkers = []string{
	"network request failed",
	"connection refused",
	"no such host",
	"i/o timeout",
	"connection reset",
	"network is unreachable",
}

// IsNetworkError reports whether err means the server could not be reached.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, common.ErrUnavailable) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range networkMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// UserMessage renders err for display.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNetworkError(err):
		return MsgNetwork
	case errors.Is(err, common.ErrSessionExpired):
		return MsgSessionExpired
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnexpected
}
