package hints

// canned hints indexed by level, 1-based
var fallbackHints = []string{
	"Try breaking the problem down into smaller subproblems. What's the simplest case you can solve first?",
	"Think about which data structure gives you the lookups or ordering this problem needs.",
	"Start with a brute force solution, then look for repeated work you can cache or skip.",
	"Write the function signature and the loop skeleton first, then fill in one branch at a time.",
}

const (
	fallbackQuestion = "What part of the problem is most challenging right now?"
	fallbackResource = "https://leetcode.com/explore/learn/"
	fallbackNextStep = "Start with a brute force solution, then optimize."
)

// returns the locally defined response used whenever the backend is
// not. levels outside 1..len(fallbackHints) select the first hint.
func Fallback(level Level) Response {
	hint := fallbackHints[0]

	if i := int(level) - 1; i >= 0 && i < len(fallbackHints) {
		hint = fallbackHints[i]
	}

	return Response{
		Hint:      hint,
		Questions: []string{fallbackQuestion},
		Resources: []string{fallbackResource},
		NextStep:  fallbackNextStep,
	}
}
