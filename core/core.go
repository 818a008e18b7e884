// Package core implements the acceptance scan: enumerate commits in the
// window, extract and filter their added lines, test line survival at the
// reference revision and detect immediate rework.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// ScanResult is everything a run produces, handed to the output layer in
// one piece so a scan either completes fully or writes nothing.
type ScanResult struct {
	Rows      []schema.CommitRow
	Summary   schema.RunSummary
	Reference string // resolved commit hash the rates were measured against

	CacheLookups int
	CacheMisses  int
	Elapsed      time.Duration
}

// ExecuteScan runs the full pipeline against the configured repository.
// Commits are processed sequentially, newest first, sharing one snapshot
// cache. Any git or parse failure aborts the run; there are no partial
// results.
func ExecuteScan(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.CacheStore) (*ScanResult, error) {
	start := time.Now()

	// --- 1. Pin the reference to an immutable hash ---
	// Every survival lookup keys on this hash, which keeps the durable
	// cache sound even for moving references like HEAD.
	refHash, err := client.ResolveRevision(ctx, cfg.RepoPath, cfg.Reference)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve reference %q: %w", cfg.Reference, err)
	}

	// --- 2. Enumerate commits in the window ---
	commits, err := EnumerateCommits(ctx, cfg, client, start)
	if err != nil {
		return nil, err
	}

	// --- 3. Score each commit ---
	cache := iocache.NewSnapshotCache(client, store)
	rows := make([]schema.CommitRow, 0, len(commits))
	for _, commit := range commits {
		row, err := scanCommit(ctx, cfg, client, cache, refHash, commit)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	// --- 4. Aggregate ---
	return &ScanResult{
		Rows:         rows,
		Summary:      Summarize(cfg, refHash, rows),
		Reference:    refHash,
		CacheLookups: cache.Lookups,
		CacheMisses:  cache.Misses,
		Elapsed:      time.Since(start),
	}, nil
}

// scanCommit scores one commit. A commit whose patch yields no qualifying
// added lines still gets a row, with zero counts and unknown rework.
func scanCommit(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache *iocache.SnapshotCache, refHash string, commit schema.Commit) (schema.CommitRow, error) {
	patch, err := client.CommitPatch(ctx, cfg.RepoPath, commit.Hash)
	if err != nil {
		return schema.CommitRow{}, fmt.Errorf("cannot read patch for %s: %w", commit.Hash, err)
	}

	added := FilterLines(ParseAddedLines(patch), cfg.IgnoreComments, cfg.MinLineLength)
	if len(added) == 0 {
		return BuildRow(commit, 0, 0, 0, ReworkOutcome{}), nil
	}

	survived := CountSurvivors(ctx, cfg.RepoPath, cache, refHash, added)
	rework := CheckImmediateRework(ctx, cfg, client, cache, commit, added)
	return BuildRow(commit, len(DistinctFiles(added)), len(added), survived, rework), nil
}
