package feed

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"member-qa/domain/qa"
	"member-qa/mocks"
	"member-qa/observability"
	"member-qa/repositories"
)

func newTestCache(t *testing.T, ttl time.Duration) *repositories.SnapshotCache {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewSnapshotCache(db, ttl, slog.Default())
}

func TestProvider_CachesSnapshot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIFeedClient(ctrl)
	client.EXPECT().
		Fetch(gomock.Any()).
		Return([]qa.RawRecord{validRecord("m1", "Alice")}, nil).
		Times(1)

	stats := &observability.PipelineStats{}
	provider := NewSnapshotProvider(client, newTestCache(t, time.Minute), stats, slog.Default())

	first, err := provider.Messages(context.Background())
	req.NoError(err)
	req.Len(first, 1)

	// Second call within the TTL must not hit the feed again.
	second, err := provider.Messages(context.Background())
	req.NoError(err)
	req.Equal(first, second)
	req.Equal(uint64(1), stats.Snapshot().FeedFetches)
	req.Equal(uint64(1), stats.Snapshot().CacheHits)
}

func TestProvider_ZeroTTLDisablesCache(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIFeedClient(ctrl)
	client.EXPECT().
		Fetch(gomock.Any()).
		Return([]qa.RawRecord{validRecord("m1", "Alice")}, nil).
		Times(2)

	provider := NewSnapshotProvider(client, newTestCache(t, 0), &observability.PipelineStats{}, slog.Default())

	_, err := provider.Messages(context.Background())
	req.NoError(err)
	_, err = provider.Messages(context.Background())
	req.NoError(err)
}

func TestProvider_SingleInFlightRefresh(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIFeedClient(ctrl)
	client.EXPECT().
		Fetch(gomock.Any()).
		DoAndReturn(func(context.Context) ([]qa.RawRecord, error) {
			// Long enough that every concurrent caller observes the same
			// in-flight refresh.
			time.Sleep(100 * time.Millisecond)
			return []qa.RawRecord{validRecord("m1", "Alice")}, nil
		}).
		Times(1)

	provider := NewSnapshotProvider(client, newTestCache(t, time.Minute), &observability.PipelineStats{}, slog.Default())

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			messages, err := provider.Messages(context.Background())
			req.NoError(err)
			req.Len(messages, 1)
		}()
	}
	wg.Wait()
}

func TestProvider_FetchFailurePropagates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIFeedClient(ctrl)
	client.EXPECT().
		Fetch(gomock.Any()).
		Return(nil, context.DeadlineExceeded).
		Times(1)

	stats := &observability.PipelineStats{}
	provider := NewSnapshotProvider(client, newTestCache(t, time.Minute), stats, slog.Default())

	_, err := provider.Messages(context.Background())
	req.Error(err)
	req.Equal(uint64(1), stats.Snapshot().FeedFailures)
}

func TestProvider_CountsDroppedRecords(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIFeedClient(ctrl)
	malformed := validRecord("m2", "Bob")
	malformed.Timestamp = "not-a-date"
	client.EXPECT().
		Fetch(gomock.Any()).
		Return([]qa.RawRecord{validRecord("m1", "Alice"), malformed}, nil).
		Times(1)

	stats := &observability.PipelineStats{}
	provider := NewSnapshotProvider(client, newTestCache(t, time.Minute), stats, slog.Default())

	messages, err := provider.Messages(context.Background())
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(uint64(1), stats.Snapshot().DroppedRecords)
}
