package core

import (
	"context"
	"strings"

	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// CountSurvivors tests each added line for literal presence in its file's
// content at the resolved reference revision. A line survives if its
// trimmed text appears anywhere in the snapshot; the line may have moved
// within the file or even appear in a different context and still count.
//
// A file absent at the reference yields empty content, so all of its lines
// are non-survivors (except degenerate empty trimmed text, which matches
// anything and can only reach here when both filters are disabled).
func CountSurvivors(ctx context.Context, repoPath string, cache *iocache.SnapshotCache, refHash string, added []schema.AddedLine) int {
	survived := 0
	for _, l := range added {
		content := cache.Content(ctx, repoPath, refHash, l.Path)
		if strings.Contains(content, strings.TrimSpace(l.Text)) {
			survived++
		}
	}
	return survived
}
