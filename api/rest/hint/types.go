package hint

import (
	"codeberg.org/antivibe/antivibe/internal/catalog"
	"codeberg.org/antivibe/antivibe/internal/hints"
)

// produces a hint for a decoded request
type Generator interface {
	Generate(req hints.Request) (hints.Response, catalog.ProblemType)
}

// ProblemTypesResponse lists the problem types with dedicated hint tables
type ProblemTypesResponse struct {
	ProblemTypes []catalog.ProblemType `json:"problem_types"`
}
