package iocache

import (
	"context"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
)

// SnapshotCache maps (revision, path) to the full textual content of that
// file at that revision. It is populated lazily and reused across commits
// and across the survival and rework checkers within a run. It is owned by
// the single processing loop; no locking is required.
//
// An optional durable CacheStore sits behind the in-memory map: resolved
// revisions are immutable, so entries written in one run are valid in all
// later runs against the same repository.
type SnapshotCache struct {
	mem    map[string]string
	store  contract.CacheStore // may be nil
	client contract.GitClient

	// Lookups and Misses count content requests and git fallbacks, for
	// the end-of-run progress line.
	Lookups int
	Misses  int
}

// NewSnapshotCache creates a run-scoped snapshot cache. store may be nil
// when durable caching is disabled.
func NewSnapshotCache(client contract.GitClient, store contract.CacheStore) *SnapshotCache {
	return &SnapshotCache{
		mem:    make(map[string]string),
		store:  store,
		client: client,
	}
}

// Content returns the file's content at a resolved revision, fetching it
// from git at most once per (revision, path) pair per run. A file missing
// at the revision yields empty content.
func (c *SnapshotCache) Content(ctx context.Context, repoPath string, rev string, path string) string {
	key := rev + ":" + path
	c.Lookups++

	if content, ok := c.mem[key]; ok {
		return content
	}

	if c.store != nil {
		if value, ok, err := c.store.Get(key); err != nil {
			contract.LogWarn("Snapshot cache read failed", err)
		} else if ok {
			content := string(value)
			c.mem[key] = content
			return content
		}
	}

	c.Misses++
	content := c.client.FileAtRevision(ctx, repoPath, rev, path)
	c.mem[key] = content

	if c.store != nil {
		if err := c.store.Set(key, []byte(content)); err != nil {
			contract.LogWarn("Snapshot cache write failed", err)
		}
	}
	return content
}
