package hints

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// what the user asked for; built fresh per invocation
type Request struct {
	Code               string
	ProblemDescription string
	ErrorMessage       string // empty means absent
	HintLevel          Level
}

// the guidance returned to the host. every field is always populated;
// empty slices mean "no data".
type Response struct {
	Hint      string
	Questions []string
	Resources []string
	NextStep  string
}

// performs the actual network round trip. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// surfaces non-blocking warnings to the user
type Notifier interface {
	Warn(message string)
}

// adapts a plain function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Warn(message string) {
	f(message)
}

// read-only client configuration, fixed at construction
type Config struct {
	BaseURL string
	Timeout time.Duration

	// accept 2xx bodies without hint or next step instead of falling back
	LenientDecoding bool

	// client-side pacing of hint requests; zero means unlimited
	RequestsPerSecond float64
	Burst             int
}

// talks to the hint backend and falls back locally when it cannot
type Client struct {
	baseURL   string
	timeout   time.Duration
	lenient   bool
	transport Transport
	notifier  Notifier
	log       *slog.Logger
	limiter   *rate.Limiter
}

// configures optional client collaborators
type Option func(*Client)

// anything that can hand out hints; implemented by *Client
type Service interface {
	GetHint(ctx context.Context, req Request) Response
	TestConnection(ctx context.Context) bool
}

const (
	DefaultBaseURL = "http://localhost:8000/api"
	DefaultTimeout = 5 * time.Second

	// version of the JSON contract sent in ContractHeader
	ContractVersion = "1"
	ContractHeader  = "X-Hint-Contract"
	RequestIDHeader = "X-Request-ID"

	UnavailableWarning = "Antivibe API not available. Using fallback hints. Make sure the backend server is running."
)
