package gemini

import "time"

const (
	// DefaultBaseURL is the Gemini Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "gemini-1.5-flash"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second
)
