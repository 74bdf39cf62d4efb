package quiz

import "strings"

// lineRole distinguishes the body line variants.
type lineRole int

const (
	roleAnswer lineRole = iota
	roleFinalMessage
)

// decodedLine is one body line reduced to its role, correctness flag, and
// content. isCorrect is meaningful only for roleAnswer.
type decodedLine struct {
	role      lineRole
	isCorrect bool
	image     ImageRef
	text      string
}

// decodeLine parses a single body line, left to right: role marker (`>` for
// the final message), correctness marker (`*`, answers only), an optional
// leading `[image]` reference, then literal text. Marker characters carry no
// meaning outside those positions, so the text may freely contain `*`, `>`,
// `[`, or `]`.
func decodeLine(raw string) (decodedLine, error) {
	rest := strings.TrimSpace(raw)
	var decoded decodedLine
	if strings.HasPrefix(rest, ">") {
		decoded.role = roleFinalMessage
		rest = strings.TrimSpace(rest[1:])
	} else if strings.HasPrefix(rest, "*") {
		decoded.isCorrect = true
		rest = strings.TrimSpace(rest[1:])
	}
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return decodedLine{}, ErrMalformedImageRef
		}
		decoded.image = ImageRef(strings.TrimSpace(rest[1:end]))
		rest = strings.TrimSpace(rest[end+1:])
	}
	decoded.text = rest
	if decoded.image == "" && decoded.text == "" {
		return decodedLine{}, ErrEmptyLineContent
	}
	return decoded, nil
}
