package errors

import "fmt"

var (
	// ErrFeedUnavailable covers an unreachable feed endpoint, a non-2xx
	// status and an unparsable response body alike. Callers surface it as a
	// failed request, never as a fallback answer.
	ErrFeedUnavailable = fmt.Errorf("feed unavailable")

	// ErrGeneration means the backend call itself failed (timeout, quota,
	// malformed response). Distinct from "no evidence found".
	ErrGeneration = fmt.Errorf("generation backend failed")

	ErrEmptyQuestion = fmt.Errorf("question cannot be empty")
)
