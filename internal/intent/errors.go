package intent

import (
	"errors"
	"fmt"
)

// ErrNoPayload means no JSON object could be isolated from the model output.
var ErrNoPayload = errors.New("no JSON object found in model response")

// ParseError reports model output that could not be turned into an intent.
// Raw is the untouched response text.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
