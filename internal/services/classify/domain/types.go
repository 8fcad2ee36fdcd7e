// Package domain defines the types and ports of the classify service
package domain

import "langid/internal/core/classify"

// Input is one classification request, whichever transport it arrived on
type Input struct {
	// Text is the payload handed to the backend
	Text string `json:"text" validate:"max=1048576"`
	// Classifier picks the backend; anything but the alternate token selects the primary
	Classifier string `json:"classifier,omitempty" validate:"max=64"`
	// Hint is an optional BCP 47 tag biasing the alternate backend
	Hint string `json:"hint,omitempty" validate:"max=35"`
}

// Output is the HTTP view of a classification
type Output struct {
	classify.Result
	// Rendered is the line the TCP protocol would have written, without the newline
	Rendered string `json:"rendered"`
}
