package quiz

// Parse converts questionnaire source text into a Document.
//
// The input is split into blank-line-delimited blocks, one per question: the
// block's first line is the prompt, each further line is an answer (`* `
// marks it correct) or the final message (`> ` prefix), optionally starting
// with a bracketed image reference.
//
// Parsing is pure and performs no I/O, so concurrent calls are safe. Input
// with no blocks yields an empty Document, not an error; the caller decides
// whether an empty questionnaire is usable. Any structural violation aborts
// the whole parse with a *ParseError.
func Parse(text string) (Document, error) {
	blocks := segment(text)
	raws := make([]rawQuestion, 0, len(blocks))
	for _, b := range blocks {
		raws = append(raws, classify(b))
	}
	return assemble(raws)
}
