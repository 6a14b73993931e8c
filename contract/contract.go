//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"member-qa/domain/qa"
)

// IFeedClient fetches the raw member-message collection from the external
// feed. No retries: retry policy belongs to the caller.
type IFeedClient interface {
	Fetch(ctx context.Context) ([]qa.RawRecord, error)
}

// ISnapshotProvider hands out the current cleaned message snapshot,
// fetching and filtering the feed when the cached one has expired.
type ISnapshotProvider interface {
	Messages(ctx context.Context) ([]qa.Message, error)
}

// IGenerator dispatches a constrained prompt to the generation backend.
// Exactly one backend call per invocation.
type IGenerator interface {
	Generate(ctx context.Context, prompt qa.Prompt) (string, error)
}

// IQAService is the single inbound operation of the service.
type IQAService interface {
	Ask(ctx context.Context, question string) (qa.AnswerResult, error)
}
