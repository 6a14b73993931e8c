package feed

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"member-qa/contract"
	"member-qa/domain/qa"
	"member-qa/observability"
	"member-qa/repositories"
)

// SnapshotProvider layers the TTL cache over the feed client. Concurrent
// requests observing an expired snapshot share a single in-flight fetch
// instead of stampeding the feed.
type SnapshotProvider struct {
	client contract.IFeedClient
	cache  *repositories.SnapshotCache
	stats  *observability.PipelineStats
	log    *slog.Logger
	group  singleflight.Group
}

func NewSnapshotProvider(
	client contract.IFeedClient,
	cache *repositories.SnapshotCache,
	stats *observability.PipelineStats,
	log *slog.Logger,
) *SnapshotProvider {
	return &SnapshotProvider{client: client, cache: cache, stats: stats, log: log}
}

// Messages returns the current cleaned snapshot. A fetch failure is
// returned as-is: no stale or empty data is silently substituted.
func (p *SnapshotProvider) Messages(ctx context.Context) ([]qa.Message, error) {
	if messages, ok := p.cache.Get(); ok {
		p.stats.IncrCacheHits()
		return messages, nil
	}

	// The shared fetch runs under the first caller's context; followers of
	// the same refresh window inherit its outcome.
	value, err, _ := p.group.Do(snapshotKeyGroup, func() (any, error) {
		p.stats.IncrFeedFetches()
		records, err := p.client.Fetch(ctx)
		if err != nil {
			p.stats.IncrFeedFailures()
			return nil, err
		}
		messages, dropped := Clean(records, p.log)
		p.stats.AddDroppedRecords(dropped)
		if dropped > 0 {
			p.log.Info("Integrity filter dropped feed records",
				"dropped", dropped, "kept", len(messages))
		}
		p.cache.Set(messages)
		return messages, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]qa.Message), nil
}

const snapshotKeyGroup = "feed-snapshot"
