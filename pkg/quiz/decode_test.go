package quiz

import (
	"errors"
	"testing"
)

// TestDecodeLineVariants verifies role, correctness, image, and text capture
// across the marker grammar.
func TestDecodeLineVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want decodedLine
	}{
		{"plain answer", "5", decodedLine{role: roleAnswer, text: "5"}},
		{"correct answer", "* 7", decodedLine{role: roleAnswer, isCorrect: true, text: "7"}},
		{"correct without space", "*7", decodedLine{role: roleAnswer, isCorrect: true, text: "7"}},
		{"image answer", "[a.png] hello", decodedLine{role: roleAnswer, image: "a.png", text: "hello"}},
		{"correct image answer", "* [img.jpg] 7", decodedLine{role: roleAnswer, isCorrect: true, image: "img.jpg", text: "7"}},
		{"image only answer", "* [a.png]", decodedLine{role: roleAnswer, isCorrect: true, image: "a.png"}},
		{"final message", "> all done", decodedLine{role: roleFinalMessage, text: "all done"}},
		{"final message with image", "> [r.jpg] details", decodedLine{role: roleFinalMessage, image: "r.jpg", text: "details"}},
		{"image only message", ">[r.jpg]", decodedLine{role: roleFinalMessage, image: "r.jpg"}},
		{"star inside message", "> * not a marker", decodedLine{role: roleFinalMessage, text: "* not a marker"}},
		{"second star is literal", "**bold", decodedLine{role: roleAnswer, isCorrect: true, text: "*bold"}},
		{"bracket mid-text is literal", "see [x.jpg] note", decodedLine{role: roleAnswer, text: "see [x.jpg] note"}},
		{"bracket after image is literal", "[a.png] [not] captured", decodedLine{role: roleAnswer, image: "a.png", text: "[not] captured"}},
		{"arrow mid-text is literal", "2 > 1", decodedLine{role: roleAnswer, text: "2 > 1"}},
		{"first closing bracket wins", "[a]b] c", decodedLine{role: roleAnswer, image: "a", text: "b] c"}},
		{"padded image capture", "[ a.png ] x", decodedLine{role: roleAnswer, image: "a.png", text: "x"}},
		{"surrounding whitespace", "  * 7  ", decodedLine{role: roleAnswer, isCorrect: true, text: "7"}},
	}
	for _, test := range tests {
		got, err := decodeLine(test.line)
		if err != nil {
			t.Errorf("%s: decode %q: %v", test.name, test.line, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: decode %q: got %+v, want %+v", test.name, test.line, got, test.want)
		}
	}
}

// TestDecodeLineIdempotent verifies decoding has no hidden state.
func TestDecodeLineIdempotent(t *testing.T) {
	first, err := decodeLine("[a.png] hello")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := decodeLine("[a.png] hello")
	if err != nil {
		t.Fatalf("decode again: %v", err)
	}
	if first != second {
		t.Fatalf("decoding diverged: %+v vs %+v", first, second)
	}
	if first.image != "a.png" || first.text != "hello" {
		t.Fatalf("unexpected decode result: %+v", first)
	}
}

// TestDecodeLineErrors verifies malformed and empty lines are rejected.
func TestDecodeLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unterminated image", "[broken.png", ErrMalformedImageRef},
		{"unterminated after marker", "* [broken", ErrMalformedImageRef},
		{"bare marker", "*", ErrEmptyLineContent},
		{"bare message marker", ">", ErrEmptyLineContent},
		{"empty brackets", "[]", ErrEmptyLineContent},
		{"blank brackets", "* [  ]", ErrEmptyLineContent},
	}
	for _, test := range tests {
		_, err := decodeLine(test.line)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: decode %q: expected %v, got %v", test.name, test.line, test.want, err)
		}
	}
}
