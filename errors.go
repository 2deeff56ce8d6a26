package loader

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrArgumentNull is returned when a relative path is required but empty.
var ErrArgumentNull = errors.New("relative path must not be empty")

// ErrConfiguration is returned when an asynchronous fetch is not given exactly one output.
var ErrConfiguration = errors.New("fetch must use exactly one of text or bytes output")

// ErrHTTPStatus is matched by every *StatusError.
var ErrHTTPStatus = errors.New("response code invalid")

// ErrPayloadTooLarge is matched by every *PayloadTooLargeError.
var ErrPayloadTooLarge = errors.New("stream is larger than can be copied into byte array")

// ErrNetwork wraps failures reported by the transport itself, as opposed to a status code.
var ErrNetwork = errors.New("network failure")

// ErrNoFactory is returned by Config.NewDefault when no Factory is configured.
var ErrNoFactory = errors.New("no default loader factory configured")

// StatusError is returned when a transport reports a status code of 400 or above.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d - %s", ErrHTTPStatus, e.Code, e.URL)
}

func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}

// PayloadTooLargeError is returned when the declared or downloaded size exceeds the limit.
// Size is -1 when only the downloaded count is known to be over the limit.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	limit := humanize.Bytes(uint64(max(e.Limit, 0)))

	if e.Size < 0 {
		return fmt.Sprintf("%s: more than %s", ErrPayloadTooLarge, limit)
	}

	return fmt.Sprintf("%s: %s exceeds %s", ErrPayloadTooLarge, humanize.Bytes(uint64(e.Size)), limit)
}

func (e *PayloadTooLargeError) Unwrap() error {
	return ErrPayloadTooLarge
}
