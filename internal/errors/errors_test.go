package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/antivibe/antivibe/internal/hints"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, fn func(c *gin.Context)) (int, ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/hint", nil)

	fn(c)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return w.Code, resp
}

func TestValidationError(t *testing.T) {
	code, resp := record(t, func(c *gin.Context) {
		ValidationError(c, stderrors.New("Key: 'WireRequest.HintLevel' Error:Field validation for 'HintLevel' failed on the 'max' tag"))
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, CodeValidationError, resp.Error)
	assert.Equal(t, "request validation failed", resp.Message)
	assert.Contains(t, resp.Details, "HintLevel")
}

func TestInternalError_SanitizedInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	code, resp := record(t, func(c *gin.Context) {
		InternalError(c, "failed to generate hint", stderrors.New("dial tcp: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "connection error occurred", resp.Details)
}

func TestInternalError_VerboseInDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	_, resp := record(t, func(c *gin.Context) {
		InternalError(c, "", stderrors.New("boom"))
	})

	assert.Equal(t, "an error occurred", resp.Message)
	assert.Equal(t, "boom", resp.Details)
}

func TestTooManyRequestsAndNotFound(t *testing.T) {
	code, resp := record(t, func(c *gin.Context) { TooManyRequests(c, "") })
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, CodeTooManyRequests, resp.Error)

	code, resp = record(t, func(c *gin.Context) { NotFound(c, "route") })
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "route not found", resp.Message)
}

func TestValidationError_FieldDetails(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(hints.WireRequest{ProblemDescription: "two sum", HintLevel: 7})
	require.Error(t, err)

	code, resp := record(t, func(c *gin.Context) {
		c.Set("request_id", "abc")
		ValidationError(c, err)
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "request validation failed", resp.Message)
	assert.Equal(t, "code is required; hint_level must be at most 4", resp.Details)
	assert.Equal(t, "abc", resp.RequestID)
}

func TestValidationError_WrongType(t *testing.T) {
	var req hints.WireRequest
	err := json.Unmarshal([]byte(`{"hint_level":"two"}`), &req)
	require.Error(t, err)

	_, resp := record(t, func(c *gin.Context) { ValidationError(c, err) })

	assert.Equal(t, "hint_level has the wrong type, expected int", resp.Details)
}

func TestWireName(t *testing.T) {
	assert.Equal(t, "hint_level", wireName("HintLevel"))
	assert.Equal(t, "code", wireName("Code"))
	assert.Equal(t, "problem_description", wireName("ProblemDescription"))
}
