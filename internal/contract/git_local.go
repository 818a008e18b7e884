package contract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	// Trace receives a diagnostic line for every invoked command before
	// execution. Defaults to stderr; tests swap in io.Discard.
	Trace io.Writer
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{Trace: os.Stderr}
}

// Run executes a git command and returns its captured stdout.
// Stderr is captured separately and surfaced through CommandError on a
// non-zero exit. exec.Cmd.Output waits for process completion on every
// path, so no subprocess handle outlives this call.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	if c.Trace != nil {
		_, _ = fmt.Fprintf(c.Trace, "🛠️  git %s\n", strings.Join(args, " "))
	}
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &CommandError{
			Args:     fullArgs,
			ExitCode: exitErr.ExitCode(),
			Stderr:   string(exitErr.Stderr),
			Stdout:   string(out),
		}
	} else if err != nil {
		return "", fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return string(out), nil
}

// RunTolerant executes a git command and swallows any failure.
func (c *LocalGitClient) RunTolerant(ctx context.Context, repoPath string, args ...string) string {
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return ""
	}
	return out
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ResolveRevision implements the GitClient interface.
func (c *LocalGitClient) ResolveRevision(ctx context.Context, repoPath string, ref string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ListCommits implements the GitClient interface. The window start is
// passed as a seconds-since-epoch bound; no upper bound is applied since
// the run end is implicitly "now".
func (c *LocalGitClient) ListCommits(ctx context.Context, repoPath string, since time.Time, author string) (string, error) {
	args := []string{
		"log",
		"--no-merges",
		fmt.Sprintf("--since=@%d", since.UTC().Unix()),
		"--pretty=format:%H|%ct|%an|%s",
	}
	if author != "" {
		args = append(args, "--author="+author)
	}
	return c.Run(ctx, repoPath, args...)
}

// CommitPatch implements the GitClient interface. Zero context lines keep
// the diff down to pure added/removed lines, and disabled rename detection
// makes a rename parse as a delete+add pair.
func (c *LocalGitClient) CommitPatch(ctx context.Context, repoPath string, hash string) (string, error) {
	return c.Run(ctx, repoPath, "show", hash, "--unified=0", "--no-renames", "--pretty=format:")
}

// FileAtRevision implements the GitClient interface. A file missing at the
// revision (e.g. later deleted) yields empty content, never an error.
func (c *LocalGitClient) FileAtRevision(ctx context.Context, repoPath string, rev string, path string) string {
	return c.RunTolerant(ctx, repoPath, "show", rev+":"+path)
}

// CommitsTouchingFile implements the GitClient interface.
func (c *LocalGitClient) CommitsTouchingFile(ctx context.Context, repoPath string, path string, from, until time.Time) []string {
	out := c.RunTolerant(ctx, repoPath,
		"log",
		"--reverse",
		fmt.Sprintf("--since=@%d", from.UTC().Unix()),
		fmt.Sprintf("--until=@%d", until.UTC().Unix()),
		"--pretty=format:%H",
		"--", path,
	)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
