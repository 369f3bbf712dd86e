package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by read paths when an app has no stored reviews.
var ErrNotFound = errors.New("reviews: not found")

// ConfigError reports an invalid caller-supplied parameter. It is raised
// before any network activity and is never retried.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// TransportError reports an HTTP-layer failure: a connection error, a
// timeout, or a non-200 status. Body carries a bounded prefix of the
// response for diagnostics.
type TransportError struct {
	Status int    // 0 when the request never completed
	Body   string // bounded response prefix, empty on connection errors
	Err    error  // underlying error, if any
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("steam request failed: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError reports a page whose payload decoded fine but whose success
// indicator was not the expected value.
type UpstreamError struct {
	Success any
	Payload map[string]any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("steam returned success=%v: %v", e.Success, e.Payload)
}
