package core

import (
	"context"
	"strings"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// ReworkOutcome carries the per-commit immediate-rework tallies.
// Known is false when no touched file had a follow-up commit inside the
// window; that is "unknown", which is distinct from a known rate of zero.
type ReworkOutcome struct {
	Checked int // lines with an observable follow-up commit
	Missing int // checked lines absent from the follow-up snapshot
	Known   bool
}

// Rate returns the fraction of checked lines that disappeared, or 0 when
// nothing was checkable.
func (r ReworkOutcome) Rate() float64 {
	return schema.Rate(r.Missing, r.Checked)
}

// CheckImmediateRework looks, per touched file, for the first commit other
// than the scanned one that touches the file inside the immediate window,
// then tests whether each of the scanned commit's added lines to that file
// is still present in the follow-up snapshot.
//
// The history lookup is best-effort: a file whose log query fails simply
// contributes no checked lines, same as a file with no follow-up commit.
func CheckImmediateRework(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache *iocache.SnapshotCache, commit schema.Commit, added []schema.AddedLine) ReworkOutcome {
	byFile := make(map[string][]schema.AddedLine, 4)
	for _, l := range added {
		byFile[l.Path] = append(byFile[l.Path], l)
	}

	var outcome ReworkOutcome
	for _, path := range DistinctFiles(added) {
		next := nextCommitForFile(ctx, cfg, client, commit, path)
		if next == "" {
			continue
		}
		outcome.Known = true
		content := cache.Content(ctx, cfg.RepoPath, next, path)
		for _, l := range byFile[path] {
			outcome.Checked++
			if !strings.Contains(content, strings.TrimSpace(l.Text)) {
				outcome.Missing++
			}
		}
	}
	return outcome
}

// nextCommitForFile returns the hash of the first commit after the scanned
// one touching path within the window, or "" when there is none. The log
// bounds are inclusive at second granularity, so the upper bound backs off
// one second to keep the window half-open.
func nextCommitForFile(ctx context.Context, cfg *contract.Config, client contract.GitClient, commit schema.Commit, path string) string {
	from := commit.When
	until := from.Add(cfg.ImmediateWindow - time.Second)
	for _, hash := range client.CommitsTouchingFile(ctx, cfg.RepoPath, path, from, until) {
		if hash != commit.Hash {
			return hash
		}
	}
	return ""
}
