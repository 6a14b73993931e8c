package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/blugelabs/bluge"

	"member-qa/domain/qa"
)

// ContextBuilder selects the budgeted message subset for a question.
// Ranking is keyword relevance (BM25 over message text and author, via an
// in-memory Bluge index built from the snapshot) with deterministic
// tiebreaks: score desc, then timestamp desc, then id asc. Messages the
// question matches not at all score zero and therefore trail the matched
// ones in pure recency order.
type ContextBuilder struct {
	budget int
	log    *slog.Logger
}

func NewContextBuilder(budget int, log *slog.Logger) *ContextBuilder {
	return &ContextBuilder{budget: budget, log: log}
}

// Select returns the context window for the question. Lines are packed
// whole in ranked order; packing stops at the first line that would push
// the rendered length past the budget. The ordering is deterministic for
// identical inputs.
func (b *ContextBuilder) Select(ctx context.Context, messages []qa.Message, question qa.Question) (qa.ContextWindow, error) {
	if len(messages) == 0 {
		return qa.ContextWindow{}, nil
	}

	scores, err := b.rank(ctx, messages, question.Text)
	if err != nil {
		return qa.ContextWindow{}, fmt.Errorf("ranking messages: %w", err)
	}

	order := make([]int, len(messages))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, c := order[i], order[j]
		if scores[a] != scores[c] {
			return scores[a] > scores[c]
		}
		if !messages[a].At.Equal(messages[c].At) {
			return messages[a].At.After(messages[c].At)
		}
		return messages[a].ID < messages[c].ID
	})

	var window qa.ContextWindow
	used := 0
	for _, idx := range order {
		line := messages[idx].RenderLine()
		cost := len(line)
		if len(window.Lines) > 0 {
			cost++ // joining newline
		}
		if used+cost > b.budget {
			break
		}
		window.Lines = append(window.Lines, qa.ContextLine{
			MessageID: messages[idx].ID,
			Rendered:  line,
		})
		used += cost
	}

	// Pathological case: the single best message alone exceeds the budget.
	// Truncate its text rather than return an empty window, keeping author
	// and timestamp intact.
	if len(window.Lines) == 0 {
		top := messages[order[0]]
		b.log.Debug("Single message exceeds context budget, truncating",
			"id", top.ID, "budget", b.budget)
		window.Lines = append(window.Lines, qa.ContextLine{
			MessageID: top.ID,
			Rendered:  truncateLine(top, b.budget),
		})
	}
	return window, nil
}

// rank indexes the snapshot in memory and scores it against the question.
// Index contents and insertion order are fully determined by the input, so
// identical inputs yield identical scores.
func (b *ContextBuilder) rank(ctx context.Context, messages []qa.Message, question string) ([]float64, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	batch := bluge.NewBatch()
	for i, m := range messages {
		doc := bluge.NewDocument(strconv.Itoa(i)).
			AddField(bluge.NewTextField("message", m.Text)).
			AddField(bluge.NewTextField("user_name", m.UserName))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		return nil, err
	}

	reader, err := writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(question).SetField("message")).
		AddShould(bluge.NewMatchQuery(question).SetField("user_name"))
	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(len(messages), query))
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(messages))
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		idx := -1
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				idx, _ = strconv.Atoi(string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if idx >= 0 && idx < len(scores) {
			scores[idx] = match.Score
		}
	}
	return scores, nil
}

// truncateLine fits a single oversized message into the budget. The text is
// cut on a rune boundary; author and timestamp survive whenever the budget
// leaves room for them.
func truncateLine(m qa.Message, budget int) string {
	full := m.RenderLine()
	if len(full) <= budget {
		return full
	}
	overhead := len(full) - len(m.Text)
	allowed := budget - overhead
	if allowed <= 0 {
		return cutRunes(full, budget)
	}
	trimmed := m
	trimmed.Text = cutRunes(m.Text, allowed)
	return trimmed.RenderLine()
}

// cutRunes returns the longest prefix of s that fits limit bytes without
// splitting a rune.
func cutRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	end := 0
	for i := range s {
		if i > limit {
			break
		}
		end = i
	}
	return s[:end]
}
