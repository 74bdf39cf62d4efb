package quiz

// ImageRef is an image filename, relative to the directory of the source
// document. The parser treats it as opaque; resolving and checking it is the
// consumer's job.
type ImageRef string

// Document is the parsed form of one questionnaire source.
type Document struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question holds one prompt, its candidate answers, and an optional trailing
// message shown after the question is answered.
type Question struct {
	// Title is an optional heading. The block grammar has no syntax for it;
	// only the legacy key-value format and the interchange envelope carry it.
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Answers []Answer `json:"answers" yaml:"answers"`
	// Images are question-level illustrations, another legacy-format field.
	Images       []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
	FinalMessage *Message   `json:"final_message,omitempty" yaml:"final_message,omitempty"`
}

// Answer is one candidate response line.
type Answer struct {
	Image     ImageRef `json:"image,omitempty" yaml:"image,omitempty"`
	Text      string   `json:"text" yaml:"text"`
	IsCorrect bool     `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// Message is the explanatory text revealed once a question is answered. At
// most one exists per question. Text may be empty only when Image is set.
type Message struct {
	Image ImageRef `json:"image,omitempty" yaml:"image,omitempty"`
	Text  string   `json:"text,omitempty" yaml:"text,omitempty"`
}
