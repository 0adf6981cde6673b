package gemini

import (
	"errors"
	"fmt"
)

var ErrNoAPIKey = errors.New("no api key configured: set gemini.api_key or GOOGLE_API_KEY")

// UpstreamError is a failed generation call. Message is the upstream text
// the hint classifier inspects.
type UpstreamError struct {
	Backend    string
	Model      string
	StatusCode int
	Status     string
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Backend, e.Model, e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Backend, e.Model, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
