package similarity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	TipAddExample  = "Try adding a real-world example."
	TipExplainHow  = "Explain the working process more clearly."
	TipTooShort    = "Your answer is too short. Add more technical depth."
	TipExcellent   = "Excellent structured technical explanation."
	LabelExcellent = "Excellent understanding"
	LabelNeedsWork = "Concept needs improvement"
	minAnswerWords = 25
	labelPassScore = 70
)

// Tips runs the answer heuristics in a fixed order and returns every tip that fires.
// When none fire the answer gets a single positive tip.
func Tips(answer string) []string {
	lowered := cases.Lower(language.Und).String(answer)

	var tips []string
	if !strings.Contains(lowered, "example") {
		tips = append(tips, TipAddExample)
	}
	if !strings.Contains(lowered, "how") {
		tips = append(tips, TipExplainHow)
	}
	if len(strings.Fields(answer)) < minAnswerWords {
		tips = append(tips, TipTooShort)
	}
	if len(tips) == 0 {
		tips = append(tips, TipExcellent)
	}
	return tips
}

// Label is the two-valued verdict returned with a score.
func Label(score float64) string {
	if score > labelPassScore {
		return LabelExcellent
	}
	return LabelNeedsWork
}
