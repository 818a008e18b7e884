package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) (string, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).(string)
	return out, ret.Error(1)
}

// RunTolerant implements the GitClient interface.
func (m *MockGitClient) RunTolerant(ctx context.Context, repoPath string, args ...string) string {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).(string)
	return out
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// ResolveRevision implements the GitClient interface.
func (m *MockGitClient) ResolveRevision(ctx context.Context, repoPath string, ref string) (string, error) {
	ret := m.Called(ctx, repoPath, ref)
	hash, _ := ret.Get(0).(string)
	return hash, ret.Error(1)
}

// ListCommits implements the GitClient interface.
func (m *MockGitClient) ListCommits(ctx context.Context, repoPath string, since time.Time, author string) (string, error) {
	ret := m.Called(ctx, repoPath, since, author)
	out, _ := ret.Get(0).(string)
	return out, ret.Error(1)
}

// CommitPatch implements the GitClient interface.
func (m *MockGitClient) CommitPatch(ctx context.Context, repoPath string, hash string) (string, error) {
	ret := m.Called(ctx, repoPath, hash)
	out, _ := ret.Get(0).(string)
	return out, ret.Error(1)
}

// FileAtRevision implements the GitClient interface.
func (m *MockGitClient) FileAtRevision(ctx context.Context, repoPath string, rev string, path string) string {
	ret := m.Called(ctx, repoPath, rev, path)
	out, _ := ret.Get(0).(string)
	return out
}

// CommitsTouchingFile implements the GitClient interface.
func (m *MockGitClient) CommitsTouchingFile(ctx context.Context, repoPath string, path string, from, until time.Time) []string {
	ret := m.Called(ctx, repoPath, path, from, until)
	hashes, _ := ret.Get(0).([]string)
	return hashes
}
