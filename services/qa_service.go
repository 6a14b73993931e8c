package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"member-qa/contract"
	"member-qa/domain/qa"
	"member-qa/observability"
)

// QAService runs the full pipeline for one question: validate, snapshot,
// select context, build prompt, generate, finalize. Each call is stateless
// and independent of concurrent calls.
type QAService struct {
	provider   contract.ISnapshotProvider
	builder    *ContextBuilder
	generator  contract.IGenerator
	validator  GroundingValidator
	stats      *observability.PipelineStats
	log        *slog.Logger
	genTimeout time.Duration
}

func NewQAService(
	provider contract.ISnapshotProvider,
	builder *ContextBuilder,
	generator contract.IGenerator,
	validator GroundingValidator,
	stats *observability.PipelineStats,
	log *slog.Logger,
	genTimeout time.Duration,
) *QAService {
	return &QAService{
		provider:   provider,
		builder:    builder,
		generator:  generator,
		validator:  validator,
		stats:      stats,
		log:        log,
		genTimeout: genTimeout,
	}
}

// Ask answers a single question. Feed and generation failures abort the
// request with their sentinel errors; the fallback sentence is reserved for
// the no-evidence case and never substitutes for a hard failure.
func (s *QAService) Ask(ctx context.Context, text string) (qa.AnswerResult, error) {
	question, err := qa.NewQuestion(text)
	if err != nil {
		return qa.AnswerResult{}, err
	}

	info := whatlanggo.Detect(question.Text)
	log := s.log.With("request_id", uuid.NewString(), "lang", info.Lang.Iso6391())

	messages, err := s.provider.Messages(ctx)
	if err != nil {
		return qa.AnswerResult{}, err
	}

	window, err := s.builder.Select(ctx, messages, question)
	if err != nil {
		return qa.AnswerResult{}, fmt.Errorf("building context: %w", err)
	}

	prompt := qa.BuildPrompt(window, question)

	// The generation timeout derives from the request context, so caller
	// cancellation also cancels the in-flight backend call.
	genCtx := ctx
	if s.genTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.genTimeout)
		defer cancel()
	}
	raw, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		s.stats.IncrGenerationFailures()
		return qa.AnswerResult{}, err
	}

	result := s.validator.Finalize(raw)
	s.stats.IncrQuestionsAnswered()
	if !result.Grounded {
		s.stats.IncrFallbackAnswers()
	}
	log.Info("Question answered",
		"grounded", result.Grounded,
		"context_lines", len(window.Lines),
		"context_chars", window.Len())
	return result, nil
}
