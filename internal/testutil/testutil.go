// Package testutil holds helpers shared by package tests: scratch git
// repositories and assertions on generated files.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SetupGitRepo initializes a git repository in dir, or in a fresh temporary
// directory when dir is empty, with remoteURLs as its origin. It returns the
// repository and its directory.
func SetupGitRepo(t *testing.T, dir string, remoteURLs ...string) (*git.Repository, string) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	if len(remoteURLs) > 0 {
		if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: remoteURLs}); err != nil {
			t.Fatalf("failed to create origin remote: %v", err)
		}
	}
	return repo, dir
}

// CommitFile writes name below the worktree of repo and commits it.
func CommitFile(t *testing.T, repo *git.Repository, name, content string) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	WriteFile(t, wt.Filesystem.Root(), name, content)
	if _, err := wt.Add(filepath.ToSlash(name)); err != nil {
		t.Fatalf("failed to stage %s: %v", name, err)
	}
	hash, err := wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return hash
}

// WriteFile writes content to root/rel, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return full
}

// FileAssertions checks the state of files below a base directory.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

// Read returns the content of a file, failing the test when it is missing.
func (fa *FileAssertions) Read(relativePath string) string {
	fa.t.Helper()
	// #nosec G304 -- test helper, paths are controlled by test code
	content, err := os.ReadFile(filepath.Join(fa.baseDir, filepath.FromSlash(relativePath)))
	if err != nil {
		fa.t.Fatalf("failed to read %s: %v", relativePath, err)
	}
	return string(content)
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); err != nil {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertNoFile validates that a file does not exist.
func (fa *FileAssertions) AssertNoFile(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected file to be absent: %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains every expected snippet.
func (fa *FileAssertions) AssertFileContains(relativePath string, expected ...string) *FileAssertions {
	fa.t.Helper()
	content := fa.Read(relativePath)
	for _, want := range expected {
		if !strings.Contains(content, want) {
			fa.t.Errorf("Expected %s to contain %q\nActual content:\n%s", relativePath, want, content)
		}
	}
	return fa
}
