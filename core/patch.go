package core

import (
	"strings"

	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Diff markers for the zero-context patch format produced by
// 'git show --unified=0 --no-renames'.
const (
	fileBoundaryMarker = "diff --git "
	newPathMarker      = "+++ "
	newPathPrefix      = "b/"
	addedLineMarker    = "+"
)

// ParseAddedLines converts the raw zero-context diff of one commit into a
// list of (file path, added-line-text) pairs, in diff order. Duplicate
// identical lines are preserved as separate entries; each one is counted
// independently downstream.
//
// Rename detection is disabled upstream, so a pure rename parses as a
// delete+add pair and a rename-with-edits parses as edits to the new path.
func ParseAddedLines(patch string) []schema.AddedLine {
	var added []schema.AddedLine
	current := "" // empty means no recognized file path

	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, fileBoundaryMarker):
			current = ""

		case strings.HasPrefix(line, newPathMarker):
			// "+++ b/<path>" names the post-image; "+++ /dev/null" means
			// the file was deleted, which leaves no path to attribute to.
			rest := line[len(newPathMarker):]
			if strings.HasPrefix(rest, newPathPrefix) {
				current = rest[len(newPathPrefix):]
			} else {
				current = ""
			}

		case strings.HasPrefix(line, addedLineMarker):
			if current != "" {
				added = append(added, schema.AddedLine{
					Path: current,
					Text: line[len(addedLineMarker):],
				})
			}
		}
	}
	return added
}

// DistinctFiles returns the distinct file paths among the added lines in
// first-seen order. The stable order keeps subprocess invocations and
// output deterministic across runs.
func DistinctFiles(added []schema.AddedLine) []string {
	seen := make(map[string]struct{}, len(added))
	var files []string
	for _, l := range added {
		if _, ok := seen[l.Path]; ok {
			continue
		}
		seen[l.Path] = struct{}{}
		files = append(files, l.Path)
	}
	return files
}
