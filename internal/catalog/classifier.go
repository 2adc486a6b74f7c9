package catalog

import "strings"

// coarse category used to pick hint tables
type ProblemType string

const (
	TwoSum         ProblemType = "two_sum"
	StringReversal ProblemType = "string_reversal"
	BinarySearch   ProblemType = "binary_search"
	LinkedList     ProblemType = "linked_list"
	General        ProblemType = "general"
)

type rule struct {
	problemType ProblemType
	keywords    []string
}

// first matching rule wins
var rules = []rule{
	{TwoSum, []string{"sum", "add", "two numbers", "target"}},
	{StringReversal, []string{"reverse", "palindrome", "string"}},
	{BinarySearch, []string{"binary", "search", "sorted", "array"}},
	{LinkedList, []string{"linked list", "node", "pointer"}},
}

// classifies a problem by keywords in its description. the code is
// accepted for future heuristics but not inspected.
func Classify(description, _ string) ProblemType {
	if description == "" {
		return General
	}

	lower := strings.ToLower(description)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.problemType
			}
		}
	}

	return General
}
