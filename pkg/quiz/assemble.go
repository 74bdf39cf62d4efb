package quiz

// assemble aggregates classified blocks into a Document, failing on the
// first structural violation.
func assemble(raws []rawQuestion) (Document, error) {
	var doc Document
	for i, raw := range raws {
		question, err := assembleQuestion(i+1, raw)
		if err != nil {
			return Document{}, err
		}
		doc.Questions = append(doc.Questions, question)
	}
	return doc, nil
}

// assembleQuestion decodes a block's body lines and enforces the question
// invariants: non-empty prompt, at least one answer, at least one correct
// answer, at most one final message. A final-message line may appear anywhere
// in the block; it still becomes the trailing message.
func assembleQuestion(ordinal int, raw rawQuestion) (Question, error) {
	// Segmentation never emits blank lines, so an empty prompt should be
	// impossible; guarded anyway.
	if raw.prompt.text == "" {
		return Question{}, &ParseError{Err: ErrEmptyPrompt, Question: ordinal, Line: raw.prompt.number}
	}
	question := Question{Prompt: raw.prompt.text}
	for _, line := range raw.body {
		decoded, err := decodeLine(line.text)
		if err != nil {
			return Question{}, &ParseError{Err: err, Question: ordinal, Line: line.number, LineText: line.text}
		}
		switch decoded.role {
		case roleFinalMessage:
			if question.FinalMessage != nil {
				return Question{}, &ParseError{Err: ErrMultipleFinalMessages, Question: ordinal, Line: line.number, LineText: line.text}
			}
			question.FinalMessage = &Message{Image: decoded.image, Text: decoded.text}
		default:
			question.Answers = append(question.Answers, Answer{
				Image:     decoded.image,
				Text:      decoded.text,
				IsCorrect: decoded.isCorrect,
			})
		}
	}
	if len(question.Answers) == 0 {
		return Question{}, &ParseError{Err: ErrNoAnswers, Question: ordinal, Line: raw.prompt.number}
	}
	if len(question.CorrectIndexes()) == 0 {
		return Question{}, &ParseError{Err: ErrNoCorrectAnswer, Question: ordinal, Line: raw.prompt.number}
	}
	return question, nil
}
