// Package gitrepo turns a materialized project directory into a local
// git repository with an initial commit. Nothing is pushed anywhere.
package gitrepo

import (
	"errors"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/iPascal619/python-project-generator/internal/errs"
)

const (
	authorName  = "projgen"
	authorEmail = "projgen@users.noreply.github.com"
)

// InitAndCommit initializes a repository in dir and commits everything
// in it. Re-running over an existing repository is allowed: the open
// repository is reused, and an unchanged tree is not an error.
func InitAndCommit(dir, message string) error {
	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(dir)
	}
	if err != nil {
		return errs.Newf(errs.KindFilesystem, "initializing repository in %s: %w", dir, err)
	}

	w, err := repo.Worktree()
	if err != nil {
		return errs.Newf(errs.KindFilesystem, "opening worktree: %w", err)
	}

	if err := w.AddGlob("."); err != nil {
		return errs.Newf(errs.KindFilesystem, "staging files: %w", err)
	}

	_, err = w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		return errs.Newf(errs.KindFilesystem, "committing files: %w", err)
	}

	return nil
}
