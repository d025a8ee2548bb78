package services

import "fmt"

// DataLoadError reports that the document source could not be read at
// startup. It is never fatal: the caller continues with an empty store and
// the bot degrades to out-of-scope and fallback replies.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load document source %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failed call to the generative backend. The
// dispatcher surfaces its text as the visible chat reply rather than
// aborting the request, so the message has to stand on its own.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("A Gemini API error occurred: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
