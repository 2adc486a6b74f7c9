package hints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"codeberg.org/antivibe/antivibe/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// upper bound on how much of a response body we are willing to buffer
const maxBodyBytes = 1 << 20

// creates a new hint client. unset config fields take their defaults.
func New(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:   baseURL,
		timeout:   timeout,
		lenient:   cfg.LenientDecoding,
		transport: &http.Client{Timeout: timeout},
		notifier:  NotifierFunc(func(string) {}),
		log:       logger.With("component", "hints"),
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}

		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// replaces the HTTP transport
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// sets where fallback warnings go
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// overrides the limiter built from Config
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// returns a hint for the request. it never fails: when the backend
// cannot produce one, the user is warned once and the fallback is
// returned instead.
func (c *Client) GetHint(ctx context.Context, req Request) Response {
	ctx, span := startHintSpan(ctx, req)

	resp, err := c.Fetch(ctx, req)
	if err == nil {
		span.end(outcomeLive, nil)
		return resp
	}

	c.log.Warn("using fallback hint",
		"error_kind", errorKind(err),
		"hint_level", int(req.HintLevel),
		"error", err,
	)

	c.notifier.Warn(UnavailableWarning)
	span.end(outcomeFallback, err)

	return Fallback(req.HintLevel)
}

// performs the live backend call only. errors are one of
// ErrUnavailable, *StatusError or ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("%w: rate limit wait: %w", ErrUnavailable, err)
		}
	}

	payload, err := json.Marshal(EncodeRequest(req))
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/hint"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("%w: failed to create request: %w", ErrUnavailable, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(ContractHeader, ContractVersion)
	httpReq.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("request_id", requestID)
	log.Debug("sending hint request", "url", url, "hint_level", int(req.HintLevel))

	httpResp, err := c.transport.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("%w: request failed: %w", ErrUnavailable, err)
	}

	if httpResp == nil || httpResp.Body == nil {
		return Response{}, fmt.Errorf("%w: transport returned no response", ErrUnavailable)
	}
	defer httpResp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("%w: failed to read response: %w", ErrUnavailable, err)
	}

	log.Debug("hint response received", "status", httpResp.StatusCode)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		log.Error("hint backend error",
			"status", httpResp.StatusCode,
			"body", string(body),
		)

		return Response{}, &StatusError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	resp, err := DecodeResponse(body, c.lenient)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return resp, nil
}

// probes the health endpoint. silent: it never warns the user.
func (c *Client) TestConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.transport.Do(req)
	if err != nil || resp == nil || resp.Body == nil {
		c.log.Debug("health check failed", "error", err)
		return false
	}
	defer resp.Body.Close() //nolint:errcheck

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)) //nolint:errcheck

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
