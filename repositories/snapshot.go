package repositories

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"member-qa/domain/qa"
)

const snapshotKey = "feed:snapshot"

// SnapshotCache holds the latest cleaned feed snapshot in BadgerDB with an
// entry TTL. It is an explicit, injected object: a TTL of zero disables
// caching entirely and every request hits the feed.
type SnapshotCache struct {
	db  *badger.DB
	ttl time.Duration
	log *slog.Logger
}

func NewSnapshotCache(db *badger.DB, ttl time.Duration, log *slog.Logger) *SnapshotCache {
	return &SnapshotCache{db: db, ttl: ttl, log: log}
}

// Get returns the cached snapshot, or false when it is absent or expired.
func (c *SnapshotCache) Get() ([]qa.Message, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.log.Warn("Snapshot cache read failed", "err", err)
		}
		return nil, false
	}

	var messages []qa.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		c.log.Warn("Snapshot cache holds unreadable value, ignoring", "err", err)
		return nil, false
	}
	return messages, true
}

// Set stores a fresh snapshot. Badger expires the entry after the TTL, so
// readers never observe a stale window without a refresh. Write failures
// only cost cache efficiency and are not propagated.
func (c *SnapshotCache) Set(messages []qa.Message) {
	if c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		c.log.Warn("Snapshot cache marshalling failed", "err", err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(snapshotKey), raw).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		c.log.Warn("Snapshot cache write failed", "err", err)
	}
}
