package feed

import (
	"log/slog"

	"member-qa/domain/qa"
)

// Clean validates raw feed records and drops the malformed ones: blank
// required fields or an unparsable timestamp. A single bad record never
// aborts the rest; relative order is preserved. Duplicate ids are an
// integrity violation that is reported, not fixed, so both copies pass
// through.
func Clean(records []qa.RawRecord, log *slog.Logger) ([]qa.Message, int) {
	messages := make([]qa.Message, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	dropped := 0

	for _, record := range records {
		trimmed := record.Trimmed()
		if err := trimmed.Validate(); err != nil {
			log.Debug("Dropping feed record with missing fields", "id", record.ID)
			dropped++
			continue
		}
		at, err := qa.ParseTimestamp(trimmed.Timestamp)
		if err != nil {
			log.Debug("Dropping feed record with unparsable timestamp",
				"id", trimmed.ID, "timestamp", trimmed.Timestamp)
			dropped++
			continue
		}
		if _, dup := seen[trimmed.ID]; dup {
			log.Warn("Duplicate message id in feed snapshot", "id", trimmed.ID)
		}
		seen[trimmed.ID] = struct{}{}

		messages = append(messages, qa.Message{
			ID:       trimmed.ID,
			UserName: trimmed.UserName,
			Text:     trimmed.Message,
			Raw:      trimmed.Timestamp,
			At:       at,
		})
	}
	return messages, dropped
}
