package git

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

const (
	defaultRemote = "origin"
	defaultBranch = "main"
)

// open finds the repository containing dir, walking up to the nearest .git.
func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.GitError("not a git repository").WithContext("path", dir).WithCause(err).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to open repository").
			Warning().
			WithContext("path", dir).
			Build()
	}
	return repo, nil
}

// DetectRemoteURL returns the first URL of the origin remote of the repository
// containing dir, normalised to https. Local-path and file:// remotes are
// rejected since nothing can be edited through them.
func DetectRemoteURL(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}
	remote, err := repo.Remote(defaultRemote)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryGit, "no origin remote").
			Warning().
			WithContext("path", dir).
			Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.GitError("origin remote has no URL").WithContext("path", dir).Build()
	}
	browsable := NormalizeRemoteURL(urls[0])
	if !IsBrowsable(browsable) {
		return "", errors.GitError("origin remote is not a web URL").
			WithContext("path", dir).
			WithContext("remote", urls[0]).
			Build()
	}
	return browsable, nil
}

// CurrentBranch returns the short name of the branch HEAD points at. It falls
// back to "main" for detached heads, unborn branches and non-repositories.
func CurrentBranch(dir string) string {
	repo, err := open(dir)
	if err != nil {
		return defaultBranch
	}
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		// An unborn HEAD still names its branch symbolically.
		if ref, refErr := repo.Storer.Reference(plumbing.HEAD); refErr == nil && ref.Target().IsBranch() {
			return ref.Target().Short()
		}
		return defaultBranch
	}
	return head.Name().Short()
}
