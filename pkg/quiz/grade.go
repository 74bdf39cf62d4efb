package quiz

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CorrectIndexes returns the 0-based positions of the answers marked correct,
// in declaration order. A valid parsed question always has at least one.
func (q Question) CorrectIndexes() []int {
	indexes := make([]int, 0, 1)
	for i, answer := range q.Answers {
		if answer.IsCorrect {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// MatchAnswer locates the answer whose text equals the given response after
// normalization, returning its 0-based index. Image-only answers never match
// by text.
func (q Question) MatchAnswer(response string) (int, bool) {
	normalized := NormalizeAnswerText(response)
	if normalized == "" {
		return 0, false
	}
	for i, answer := range q.Answers {
		if answer.Text == "" {
			continue
		}
		if NormalizeAnswerText(answer.Text) == normalized {
			return i, true
		}
	}
	return 0, false
}

// IsCorrectSelection reports whether the selected 0-based answer indexes are
// exactly the set marked correct. Duplicates are ignored; an out-of-range
// index fails the selection.
func (q Question) IsCorrectSelection(selection ...int) bool {
	selected := map[int]struct{}{}
	for _, index := range selection {
		if index < 0 || index >= len(q.Answers) {
			return false
		}
		selected[index] = struct{}{}
	}
	correct := q.CorrectIndexes()
	if len(selected) != len(correct) {
		return false
	}
	for _, index := range correct {
		if _, ok := selected[index]; !ok {
			return false
		}
	}
	return true
}
