package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/testutil"
)

func TestDetectRemoteURL(t *testing.T) {
	_, dir := testutil.SetupGitRepo(t, "", "git@github.com:inful/notes.git")
	sub := filepath.Join(dir, "docs", "guide")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	got, err := DetectRemoteURL(sub)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/inful/notes", got)
}

func TestDetectRemoteURL_NoRemote(t *testing.T) {
	_, dir := testutil.SetupGitRepo(t, "")
	_, err := DetectRemoteURL(dir)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryGit))
}

func TestDetectRemoteURL_LocalRemote(t *testing.T) {
	for _, remote := range []string{"/srv/git/notes.git", "file:///srv/git/notes.git", "../notes.git"} {
		t.Run(remote, func(t *testing.T) {
			_, dir := testutil.SetupGitRepo(t, "", remote)
			_, err := DetectRemoteURL(dir)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryGit))
		})
	}
}

func TestDetectRemoteURL_NotARepository(t *testing.T) {
	_, err := DetectRemoteURL(t.TempDir())
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryGit, ce.Category())
	assert.Equal(t, errors.SeverityWarning, ce.Severity())
}

func TestCurrentBranch(t *testing.T) {
	repo, dir := testutil.SetupGitRepo(t, "")
	hash := testutil.CommitFile(t, repo, "README.md", "# readme\n")

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName("drafts"), Create: true}))
	assert.Equal(t, "drafts", CurrentBranch(dir))

	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: hash}))
	assert.Equal(t, "main", CurrentBranch(dir), "detached head falls back")
}

func TestCurrentBranch_Fallbacks(t *testing.T) {
	assert.Equal(t, "main", CurrentBranch(t.TempDir()))

	repo, dir := testutil.SetupGitRepo(t, "")
	// Unborn branch: HEAD is symbolic but has no commit yet.
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("trunk"))))
	assert.Equal(t, "trunk", CurrentBranch(dir))
}
