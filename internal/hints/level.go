package hints

import (
	"strconv"
	"strings"
)

// how specific the requested guidance should be
type Level int

const (
	LevelConceptual     Level = 1
	LevelAlgorithm      Level = 2
	LevelImplementation Level = 3
	LevelCodeStructure  Level = 4
)

// returns the machine name of the level
func (l Level) String() string {
	switch l {
	case LevelConceptual:
		return "conceptual"
	case LevelAlgorithm:
		return "algorithm"
	case LevelImplementation:
		return "implementation"
	case LevelCodeStructure:
		return "code_structure"
	default:
		return "unknown"
	}
}

// returns the label shown in the level picker
func (l Level) Label() string {
	switch l {
	case LevelConceptual:
		return "Level 1: Conceptual Nudge"
	case LevelAlgorithm:
		return "Level 2: Algorithm Suggestion"
	case LevelImplementation:
		return "Level 3: Implementation Hint"
	case LevelCodeStructure:
		return "Level 4: Code Structure"
	default:
		return "Level " + strconv.Itoa(int(l))
	}
}

func (l Level) Valid() bool {
	return l >= LevelConceptual && l <= LevelCodeStructure
}

// returns the selectable levels in display order
func Levels() []Level {
	return []Level{LevelConceptual, LevelAlgorithm, LevelImplementation, LevelCodeStructure}
}

// parses user input into a level. anything that is not an integer
// yields 0, which the fallback path maps to its default entry.
func ParseLevel(s string) Level {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return Level(n)
}
