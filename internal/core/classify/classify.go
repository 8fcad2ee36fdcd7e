// Package classify defines the uniform backend contract, the registry that picks a
// backend per request, and the textual rendering of results
package classify

import (
	"context"

	"golang.org/x/text/language"
)

// Undetermined is the code reported when a payload carries nothing to classify
var Undetermined = language.Und.String()

// Candidate is one ranked guess
type Candidate struct {
	// Name is the upper-case English language name, e.g. ENGLISH
	Name string `json:"name"`
	// Code is the ISO 639-1 code when one exists, else ISO 639-3
	Code string `json:"code"`
	// Percent is the share of the text attributed to this language, 0..100
	Percent int `json:"percent"`
	// Score is the backend's raw confidence, 0..1
	Score float64 `json:"score"`
}

// Result is the outcome of one classification
type Result struct {
	Code       string      `json:"code"`
	Reliable   bool        `json:"reliable"`
	TextBytes  int         `json:"text_bytes"`
	Script     string      `json:"script,omitempty"`
	Backend    string      `json:"backend"`
	Candidates []Candidate `json:"candidates"`
}

// Unknown is the deterministic low-confidence result for empty or letterless text
func Unknown(backend string) Result {
	return Result{Code: Undetermined, Backend: backend, Candidates: []Candidate{}}
}

// Adapter wraps a single identification engine
// Implementations must tolerate empty text and be safe for concurrent use
type Adapter interface {
	Name() string
	Classify(ctx context.Context, text, hint string) (Result, error)
}

// AdapterFunc lets a plain function act as an Adapter
type AdapterFunc struct {
	ID string
	Fn func(ctx context.Context, text, hint string) (Result, error)
}

// Name implements Adapter
func (a AdapterFunc) Name() string { return a.ID }

// Classify implements Adapter
func (a AdapterFunc) Classify(ctx context.Context, text, hint string) (Result, error) {
	return a.Fn(ctx, text, hint)
}
