package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/antivibe/antivibe/internal/hints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBackend(t *testing.T, url string) {
	t.Helper()

	t.Setenv("ANTIVIBE_API_URL", url)
	t.Setenv("ANTIVIBE_TIMEOUT", "2s")
	t.Setenv("ENVIRONMENT", "test")
}

func newBackend(t *testing.T, got *hints.WireRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		case "/api/hint":
			if got != nil {
				assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
			}

			_, _ = w.Write([]byte(`{
				"hint": "Walk the string from both ends.",
				"questions": ["Where do the pointers meet?"],
				"resources": [],
				"next_step": "Swap characters until the pointers cross."
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func writeCode(t *testing.T, code string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte(code), 0o600))

	return path
}

func TestRun_Hint(t *testing.T) {
	var got hints.WireRequest
	setBackend(t, newBackend(t, &got).URL+"/api")

	htmlPath := filepath.Join(t.TempDir(), "hint.html")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"hint",
		"-file", writeCode(t, "s[::-1]"),
		"-problem", "reverse a string",
		"-level", "3",
		"-error", "IndexError",
		"-html", htmlPath,
	}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Walk the string from both ends.")
	assert.NotContains(t, stderr.String(), hints.UnavailableWarning)

	assert.Equal(t, hints.WireRequest{
		Code:               "s[::-1]",
		ProblemDescription: "reverse a string",
		ErrorMessage:       "IndexError",
		HintLevel:          3,
	}, got)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Swap characters until the pointers cross.")
}

func TestRun_HintFromStdinWithDump(t *testing.T) {
	var got hints.WireRequest
	setBackend(t, newBackend(t, &got).URL+"/api")

	var stdout, stderr bytes.Buffer
	code := run([]string{"hint", "-file", "-", "-problem", "reverse a string", "-dump"},
		strings.NewReader("print('hi')"), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "print('hi')", got.Code)
	assert.Contains(t, stdout.String(), "hints.Response{")
	assert.Contains(t, stdout.String(), `NextStep: "Swap characters until the pointers cross."`)
}

func TestRun_HintFallsBackWhenBackendIsDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	setBackend(t, srv.URL+"/api")

	var stdout, stderr bytes.Buffer
	code := run([]string{"hint", "-file", writeCode(t, "x = 1"), "-problem", "two sum", "-level", "1"},
		strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), hints.UnavailableWarning)
	assert.Contains(t, stdout.String(), "brute force")
}

func TestRun_HintUsageErrors(t *testing.T) {
	setBackend(t, "http://127.0.0.1:1/api")

	path := writeCode(t, "x = 1")
	empty := writeCode(t, "")
	blank := writeCode(t, "  \n\t\n")

	tests := map[string][]string{
		"missing file":  {"hint", "-problem", "two sum"},
		"bad level":     {"hint", "-file", path, "-problem", "two sum", "-level", "9"},
		"empty code":    {"hint", "-file", empty, "-problem", "two sum"},
		"blank code":    {"hint", "-file", blank, "-problem", "two sum"},
		"unknown flag":  {"hint", "-nope"},
		"unknown cmd":   {"explain"},
		"missing input": {"hint", "-file", filepath.Join(t.TempDir(), "nope.py"), "-problem", "x"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(args, strings.NewReader(""), &stdout, &stderr)

			assert.NotEqual(t, exitOK, code)
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_HintBlankCodeNeverCallsBackend(t *testing.T) {
	var got hints.WireRequest
	setBackend(t, newBackend(t, &got).URL+"/api")

	var stdout, stderr bytes.Buffer
	code := run([]string{"hint", "-file", "-", "-problem", "two sum"},
		strings.NewReader("   \n\t  \n"), &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "Please select some code first!")
	assert.Empty(t, stdout.String())
	assert.Equal(t, hints.WireRequest{}, got)
}

func TestRun_Ping(t *testing.T) {
	setBackend(t, newBackend(t, nil).URL+"/api")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitOK, run([]string{"ping"}, nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "is reachable")

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	setBackend(t, srv.URL+"/api")

	stdout.Reset()
	assert.Equal(t, exitError, run([]string{"ping"}, nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "not reachable")
}

func TestRun_Analyze(t *testing.T) {
	var stdout bytes.Buffer

	assert.Equal(t, exitOK, run([]string{"analyze"}, nil, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "coming soon")
}
