// Package contract holds the shared interfaces, configuration and error
// types that connect the CLI surface to the core scanning logic.
package contract

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GitClient defines the necessary operations for the acceptance scan.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns captured stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) (string, error)

	// RunTolerant executes a git command and swallows any failure,
	// returning empty output instead. Reserved for best-effort lookups
	// such as fetching a file that may not exist at a revision.
	RunTolerant(ctx context.Context, repoPath string, args ...string) string

	// --- Repository / Reference Resolution ---

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// ResolveRevision resolves a symbolic reference (e.g. HEAD, a branch,
	// a tag) to a full immutable commit hash.
	ResolveRevision(ctx context.Context, repoPath string, ref string) (string, error)

	// --- History ---

	// ListCommits returns the raw non-merge commit log since the given
	// instant, optionally filtered by author, newest first. Each line is
	// hash|unix-time|author|subject.
	ListCommits(ctx context.Context, repoPath string, since time.Time, author string) (string, error)

	// CommitPatch returns the zero-context diff of one commit with rename
	// detection disabled.
	CommitPatch(ctx context.Context, repoPath string, hash string) (string, error)

	// --- File State / Content (best-effort) ---

	// FileAtRevision returns the full content of a file at a revision,
	// or empty content when the file does not exist there.
	FileAtRevision(ctx context.Context, repoPath string, rev string, path string) string

	// CommitsTouchingFile returns the hashes of commits touching a file
	// within [from, until], oldest first. Failures yield an empty slice.
	CommitsTouchingFile(ctx context.Context, repoPath string, path string, from, until time.Time) []string
}

// CommandError reports a git subprocess that exited non-zero. It carries
// everything needed for a consolidated diagnostic: the arguments, the exit
// code and both captured output streams.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	return fmt.Sprintf("git %s exited with code %d: %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

// ParseError reports a malformed metadata line from the commit enumerator.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed log line %q: %s", e.Line, e.Reason)
}
