package hints

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// transport failure, timeout, or the rate limiter gave up
	ErrUnavailable = errors.New("hint backend unavailable")

	// 2xx with a body that is not a hint response
	ErrMalformedResponse = errors.New("malformed hint response")
)

// non-2xx answer from the backend; Body is diagnostic text
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hint backend returned status %d: %s", e.StatusCode, e.Body)
}

// error kinds reported in logs and spans
const (
	kindNone        = "none"
	kindUnavailable = "unavailable"
	kindTimeout     = "timeout"
	kindStatus      = "status"
	kindMalformed   = "malformed"
)

// classifies a Fetch error for observability
func errorKind(err error) string {
	var (
		statusErr *StatusError
		netErr    net.Error
	)

	switch {
	case err == nil:
		return kindNone
	case errors.As(err, &statusErr):
		return kindStatus
	case errors.Is(err, ErrMalformedResponse):
		return kindMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return kindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return kindTimeout
	default:
		return kindUnavailable
	}
}
