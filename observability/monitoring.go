package observability

import "sync/atomic"

// PipelineStats aggregates request-path counters for the health endpoint.
// Integrity warnings never abort a request, so dropped records only show up
// here and in debug logs.
type PipelineStats struct {
	FeedFetches        uint64
	FeedFailures       uint64
	CacheHits          uint64
	DroppedRecords     uint64
	QuestionsAnswered  uint64
	FallbackAnswers    uint64
	GenerationFailures uint64
}

// StatsSnapshot is the JSON shape exposed on /health.
type StatsSnapshot struct {
	FeedFetches        uint64 `json:"feed_fetches"`
	FeedFailures       uint64 `json:"feed_failures"`
	CacheHits          uint64 `json:"cache_hits"`
	DroppedRecords     uint64 `json:"dropped_records"`
	QuestionsAnswered  uint64 `json:"questions_answered"`
	FallbackAnswers    uint64 `json:"fallback_answers"`
	GenerationFailures uint64 `json:"generation_failures"`
}

func (s *PipelineStats) IncrFeedFetches() {
	atomic.AddUint64(&s.FeedFetches, 1)
}

func (s *PipelineStats) IncrFeedFailures() {
	atomic.AddUint64(&s.FeedFailures, 1)
}

func (s *PipelineStats) IncrCacheHits() {
	atomic.AddUint64(&s.CacheHits, 1)
}

func (s *PipelineStats) AddDroppedRecords(n int) {
	if n > 0 {
		atomic.AddUint64(&s.DroppedRecords, uint64(n))
	}
}

func (s *PipelineStats) IncrQuestionsAnswered() {
	atomic.AddUint64(&s.QuestionsAnswered, 1)
}

func (s *PipelineStats) IncrFallbackAnswers() {
	atomic.AddUint64(&s.FallbackAnswers, 1)
}

func (s *PipelineStats) IncrGenerationFailures() {
	atomic.AddUint64(&s.GenerationFailures, 1)
}

func (s *PipelineStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		FeedFetches:        atomic.LoadUint64(&s.FeedFetches),
		FeedFailures:       atomic.LoadUint64(&s.FeedFailures),
		CacheHits:          atomic.LoadUint64(&s.CacheHits),
		DroppedRecords:     atomic.LoadUint64(&s.DroppedRecords),
		QuestionsAnswered:  atomic.LoadUint64(&s.QuestionsAnswered),
		FallbackAnswers:    atomic.LoadUint64(&s.FallbackAnswers),
		GenerationFailures: atomic.LoadUint64(&s.GenerationFailures),
	}
}
