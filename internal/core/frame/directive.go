package frame

import "strings"

const (
	// KeyClassifier selects the backend
	KeyClassifier = "CLASSIFIER"
	// KeyHint passes a language hint to the backend
	KeyHint = "LANGHINT"
)

// Request is the parsed form of one framed request
type Request struct {
	// Classifier is the last CLASSIFIER value, "" when the directive is absent
	Classifier string
	// Hint is the last LANGHINT value, "" when absent or empty
	Hint string
	// Text is the payload handed to the backend
	Text string
	// PayloadLines counts the lines that contributed to Text
	PayloadLines int
}

// Parser splits framed text into directives and payload
//
// A line is a directive when it contains "CLASSIFIER=" or "LANGHINT=" anywhere,
// CLASSIFIER winning when both appear. The value is the segment between the
// first and second '=' with surrounding whitespace trimmed. Later directives
// overwrite earlier ones. There is no escaping, so payload text that contains
// a directive marker is consumed as a directive.
type Parser struct {
	// Terminator is removed (every occurrence) before splitting
	Terminator string
	// Separator joins surviving payload lines; "" concatenates them as-is
	Separator string
}

// NewParser returns a Parser for terminator using the concatenating join rule
func NewParser(terminator string) Parser {
	if terminator == "" {
		terminator = DefaultTerminator
	}
	return Parser{Terminator: terminator}
}

// Parse interprets raw framed text
func (p Parser) Parse(raw string) Request {
	term := p.Terminator
	if term == "" {
		term = DefaultTerminator
	}
	raw = strings.ReplaceAll(raw, term, "")

	var (
		req  Request
		text strings.Builder
	)
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.Contains(line, KeyClassifier+"="):
			req.Classifier = directiveValue(line)
		case strings.Contains(line, KeyHint+"="):
			req.Hint = directiveValue(line)
		default:
			if req.PayloadLines > 0 {
				text.WriteString(p.Separator)
			}
			text.WriteString(line)
			req.PayloadLines++
		}
	}
	req.Text = text.String()
	return req
}

// directiveValue returns the text between the first and second '='
func directiveValue(line string) string {
	parts := strings.SplitN(line, "=", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
