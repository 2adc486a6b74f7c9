package catalog

import (
	"math/rand/v2"
	"sync"

	"codeberg.org/antivibe/antivibe/internal/hints"
)

// how many questions and resources a single hint carries at most
const sampleSize = 2

// picks canned hints for a request. safe for concurrent use.
type Catalog struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// creates a catalog with a randomly seeded source
func New() *Catalog {
	return NewWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// creates a catalog with an explicit source, for reproducible output
func NewWithSource(src rand.Source) *Catalog {
	return &Catalog{rng: rand.New(src)}
}

// builds a hint for the request. levels without a table fall back to
// the level 1 table of the problem type.
func (c *Catalog) Generate(req hints.Request) (hints.Response, ProblemType) {
	problemType := Classify(req.ProblemDescription, req.Code)
	tableType := tablesFor(problemType)

	levelHints, ok := hintTables[tableType][req.HintLevel]
	if !ok {
		levelHints = hintTables[tableType][hints.LevelConceptual]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	hint := "Think about the problem step by step."
	if len(levelHints) > 0 {
		hint = levelHints[c.rng.IntN(len(levelHints))]
	}

	return hints.Response{
		Hint:      hint,
		Questions: c.sample(questionTables[tableType], sampleSize),
		Resources: c.sample(resourceTables[tableType], sampleSize),
		NextStep:  nextSteps[c.rng.IntN(len(nextSteps))],
	}, problemType
}

// returns the problem types that have their own tables
func ProblemTypes() []ProblemType {
	out := make([]ProblemType, len(tableOrder))
	copy(out, tableOrder)

	return out
}

func tablesFor(problemType ProblemType) ProblemType {
	if _, ok := hintTables[problemType]; ok {
		return problemType
	}

	return General
}

// picks up to n distinct entries; caller holds c.mu
func (c *Catalog) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}

	out := make([]string, 0, n)
	for _, i := range c.rng.Perm(len(items))[:n] {
		out = append(out, items[i])
	}

	return out
}
