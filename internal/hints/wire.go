package hints

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire contract, version 1.
//
// The backend uses snake_case field names. This file is the only place
// that knows about them; the client and the reference server both go
// through it.

// request body of POST {baseURL}/hint
type WireRequest struct {
	Code               string `json:"code" binding:"required"`
	ProblemDescription string `json:"problem_description" binding:"required"`
	ErrorMessage       string `json:"error_message,omitempty"`
	HintLevel          int    `json:"hint_level" binding:"required,min=1,max=4"`
}

// response body of a successful POST {baseURL}/hint
type WireResponse struct {
	Hint      string   `json:"hint"`
	Questions []string `json:"questions"`
	Resources []string `json:"resources"`
	NextStep  string   `json:"next_step"`

	// older backends spelled it camelCase
	LegacyNextStep string `json:"nextStep,omitempty"`
}

var errMissingFields = errors.New("response is missing hint or next_step")

// translates an in-process request to its wire shape
func EncodeRequest(req Request) WireRequest {
	return WireRequest{
		Code:               req.Code,
		ProblemDescription: req.ProblemDescription,
		ErrorMessage:       req.ErrorMessage,
		HintLevel:          int(req.HintLevel),
	}
}

// translates a wire request back to the in-process shape
func DecodeRequest(w WireRequest) Request {
	return Request{
		Code:               w.Code,
		ProblemDescription: w.ProblemDescription,
		ErrorMessage:       w.ErrorMessage,
		HintLevel:          Level(w.HintLevel),
	}
}

// translates a response to its wire shape, always emitting arrays
func EncodeResponse(resp Response) WireResponse {
	return WireResponse{
		Hint:      resp.Hint,
		Questions: nonNil(resp.Questions),
		Resources: nonNil(resp.Resources),
		NextStep:  resp.NextStep,
	}
}

// parses a success body. a body without hint or next step is rejected
// unless lenient is set; null and {} count as missing both.
func DecodeResponse(body []byte, lenient bool) (Response, error) {
	var w WireResponse

	if err := json.Unmarshal(body, &w); err != nil {
		return Response{}, fmt.Errorf("failed to parse response: %w", err)
	}

	nextStep := w.NextStep
	if nextStep == "" {
		nextStep = w.LegacyNextStep
	}

	if !lenient && (w.Hint == "" || nextStep == "") {
		return Response{}, errMissingFields
	}

	return Response{
		Hint:      w.Hint,
		Questions: nonNil(w.Questions),
		Resources: nonNil(w.Resources),
		NextStep:  nextStep,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
