package quiz

// rawQuestion is a block split into its prompt line and body lines.
type rawQuestion struct {
	prompt sourceLine
	body   []sourceLine
}

// classify designates the block's first line as the prompt and the rest as
// body lines. The prompt is taken verbatim even when it happens to start with
// a marker character; only body lines are decoded further.
func classify(b block) rawQuestion {
	return rawQuestion{
		prompt: b.lines[0],
		body:   b.lines[1:],
	}
}
