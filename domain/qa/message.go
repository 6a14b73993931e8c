package qa

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"member-qa/errors"
)

var validate = validator.New()

// RawRecord is the loose shape the feed returns. Unknown extra fields are
// ignored at decode time; the required ones are validated by the integrity
// filter before anything downstream sees them.
type RawRecord struct {
	ID        string `json:"id" validate:"required"`
	UserName  string `json:"user_name" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every
// field, so that blank-but-not-empty values fail the required validation.
func (r RawRecord) Trimmed() RawRecord {
	return RawRecord{
		ID:        strings.TrimSpace(r.ID),
		UserName:  strings.TrimSpace(r.UserName),
		Message:   strings.TrimSpace(r.Message),
		Timestamp: strings.TrimSpace(r.Timestamp),
	}
}

// Validate reports whether the record carries all required fields.
func (r RawRecord) Validate() error {
	return validate.Struct(r)
}

// Message is a validated member message. It is read-only: sourced fresh
// from the feed, never mutated or persisted beyond the snapshot cache.
type Message struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name"`
	Text     string    `json:"message"`
	// Raw is the timestamp exactly as the feed sent it; rendering keeps it
	// verbatim so the model sees the same instant the member saw.
	Raw string    `json:"timestamp"`
	At  time.Time `json:"at"`
}

// timestampLayouts accepts RFC3339 first, then a zone-less ISO-8601 variant
// the feed has been observed to emit.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601 instant, returning the first layout
// that matches.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Question is the free-text question of a single request, created per
// inbound call and discarded once the response is produced.
type Question struct {
	Text string `validate:"required"`
}

// NewQuestion validates and normalizes the inbound question text.
func NewQuestion(text string) (Question, error) {
	q := Question{Text: strings.TrimSpace(text)}
	if err := validate.Struct(q); err != nil {
		return Question{}, errors.ErrEmptyQuestion
	}
	return q, nil
}
