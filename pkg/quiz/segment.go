package quiz

import "strings"

// sourceLine is one kept input line with its 1-based source position.
// Surrounding whitespace is already stripped; interior whitespace survives.
type sourceLine struct {
	text   string
	number int
}

// block is a maximal run of non-blank lines, one per question.
type block struct {
	lines []sourceLine
}

// segment splits raw text into blank-line-delimited blocks. A line is blank
// when it trims to nothing; blank lines separate blocks and belong to none.
// Input with no non-blank lines yields zero blocks.
func segment(raw string) []block {
	var blocks []block
	var current []sourceLine
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, block{lines: current})
			current = nil
		}
	}
	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, sourceLine{text: trimmed, number: i + 1})
	}
	flush()
	return blocks
}
