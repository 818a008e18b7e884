package core

import (
	"path/filepath"
	"strings"

	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Comment prefixes recognized by the filter, keyed by file family.
// Script-family extensions drop the "#" prefix so shell-style markers in
// string literals are not over-matched; ".json" has no comment syntax at
// all, so only the blank and length filters apply to it.
var (
	scriptExtensions = map[string]struct{}{
		".ts": {}, ".tsx": {}, ".js": {}, ".jsx": {}, ".mjs": {}, ".cjs": {},
	}
	scriptCommentPrefixes  = []string{"//", "/*", "*/", "*"}
	generalCommentPrefixes = []string{"//", "#", "/*", "*/", "*"}
)

const dataExtension = ".json"

// FilterLines drops added lines that carry no signal for survival
// measurement: blank or comment-only lines (when enabled) and lines whose
// trimmed text is shorter than the minimum length. Order is preserved.
func FilterLines(added []schema.AddedLine, ignoreComments bool, minLineLength int) []schema.AddedLine {
	var kept []schema.AddedLine
	for _, l := range added {
		trimmed := strings.TrimSpace(l.Text)
		if ignoreComments {
			if trimmed == "" || isCommentLine(l.Path, trimmed) {
				continue
			}
		}
		if len(trimmed) < minLineLength {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// isCommentLine reports whether a trimmed non-empty line looks like a
// comment for the file's extension. This is a prefix heuristic, not a
// parse; a "*" continuation line inside a block comment counts too.
func isCommentLine(path string, trimmed string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == dataExtension {
		return false
	}
	prefixes := generalCommentPrefixes
	if _, ok := scriptExtensions[ext]; ok {
		prefixes = scriptCommentPrefixes
	}
	for _, p := range prefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
