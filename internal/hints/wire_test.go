package hints

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "without error message",
			req: Request{
				Code:               "for i in range(n):\n    pass",
				ProblemDescription: "reverse a string",
				HintLevel:          LevelConceptual,
			},
		},
		{
			name: "with error message",
			req: Request{
				Code:               "return nums[i]",
				ProblemDescription: "binary search in a sorted array",
				ErrorMessage:       "IndexError: list index out of range",
				HintLevel:          LevelCodeStructure,
			},
		},
		{
			name: "out of range level survives",
			req: Request{
				Code:               "x",
				ProblemDescription: "y",
				HintLevel:          Level(-7),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(EncodeRequest(tt.req))
			require.NoError(t, err)

			var w WireRequest
			require.NoError(t, json.Unmarshal(body, &w))

			if diff := cmp.Diff(tt.req, DecodeRequest(w)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeRequest_WireNames(t *testing.T) {
	body, err := json.Marshal(EncodeRequest(Request{
		Code:               "c",
		ProblemDescription: "p",
		HintLevel:          LevelImplementation,
	}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.Equal(t, "c", fields["code"])
	assert.Equal(t, "p", fields["problem_description"])
	assert.Equal(t, float64(3), fields["hint_level"])
	assert.NotContains(t, fields, "error_message", "absent error message must be omitted")
	assert.NotContains(t, fields, "problemDescription")
}

func TestResponseRoundTrip(t *testing.T) {
	want := Response{
		Hint:      "Use a hash map.",
		Questions: []string{"What is the complement?", "What about duplicates?"},
		Resources: []string{},
		NextStep:  "Try it with sample inputs.",
	}

	body, err := json.Marshal(EncodeResponse(want))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"next_step"`)
	assert.Contains(t, string(body), `"resources":[]`)

	got, err := DecodeResponse(body, true)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeResponse_NilSlices(t *testing.T) {
	w := EncodeResponse(Response{Hint: "h", NextStep: "n"})

	assert.NotNil(t, w.Questions)
	assert.NotNil(t, w.Resources)
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		lenient bool
		want    Response
		wantErr bool
	}{
		{
			name: "legacy camelCase next step",
			body: `{"hint":"H","questions":["Q1"],"resources":[],"nextStep":"N"}`,
			want: Response{Hint: "H", Questions: []string{"Q1"}, Resources: []string{}, NextStep: "N"},
		},
		{
			name: "snake_case wins over legacy",
			body: `{"hint":"H","next_step":"new","nextStep":"old"}`,
			want: Response{Hint: "H", Questions: []string{}, Resources: []string{}, NextStep: "new"},
		},
		{
			name:    "not json",
			body:    `oops`,
			wantErr: true,
		},
		{
			name:    "json array",
			body:    `["hint"]`,
			wantErr: true,
		},
		{
			name:    "wrong field type",
			body:    `{"hint": 42}`,
			wantErr: true,
		},
		{
			name:    "without next step",
			body:    `{"hint":"H"}`,
			wantErr: true,
		},
		{
			name:    "without hint",
			body:    `{"next_step":"N"}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "null",
			body:    `null`,
			wantErr: true,
		},
		{
			name:    "unexpected shape",
			body:    `{"unexpected":"shape"}`,
			wantErr: true,
		},
		{
			name:    "lenient without next step",
			body:    `{"hint":"H"}`,
			lenient: true,
			want:    Response{Hint: "H", Questions: []string{}, Resources: []string{}},
		},
		{
			name:    "lenient still rejects non-objects",
			body:    `["hint"]`,
			lenient: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeResponse([]byte(tt.body), tt.lenient)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
