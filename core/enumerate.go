package core

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// EnumerateCommits lists non-merge commits inside the configured window,
// optionally filtered by author, in native log order (newest first).
func EnumerateCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient, now time.Time) ([]schema.Commit, error) {
	out, err := client.ListCommits(ctx, cfg.RepoPath, cfg.WindowStart(now), cfg.Author)
	if err != nil {
		return nil, err
	}
	return ParseCommitLog(out)
}

// ParseCommitLog parses the fixed 4-field pipe-delimited log output
// (hash|unix-time|author|subject). A malformed line is a hard failure
// rather than a source of garbage fields.
func ParseCommitLog(out string) ([]schema.Commit, error) {
	var commits []schema.Commit
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			return nil, &contract.ParseError{Line: line, Reason: "expected 4 pipe-delimited fields"}
		}
		ts, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, &contract.ParseError{Line: line, Reason: "non-integer unix timestamp"}
		}
		commits = append(commits, schema.Commit{
			Hash:    parts[0],
			When:    time.Unix(ts, 0).UTC(),
			Author:  parts[2],
			Subject: parts[3],
		})
	}
	return commits, nil
}
