package git

import (
	"context"
	"errors"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/dcarrot2/g-branches/internal/log"
)

// Checkout switches the working tree to the named branch. Remote-tracking
// names (prefixed by a configured remote, e.g. origin/foo) create or reuse a
// local branch of the same short name tracking the remote one. The working
// state is unchanged when the switch fails.
func (r *Repository) Checkout(ctx context.Context, name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return wrapErr(OperationFailed, err, "Failed to checkout %s", name)
	}

	if remote, short, ok := r.splitRemoteRef(name); ok {
		return r.checkoutRemote(ctx, wt, remote, short, name)
	}

	log.FromContext(ctx).Debug("checking out local branch", "branch", name)
	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(name)}); err != nil {
		return wrapErr(OperationFailed, err, "Failed to checkout %s", name)
	}
	return nil
}

// splitRemoteRef reports whether name is a remote-tracking reference of one
// of the repository's configured remotes, returning the remote name and the
// branch's short name.
func (r *Repository) splitRemoteRef(name string) (remote, short string, ok bool) {
	if !strings.Contains(name, "/") {
		return "", "", false
	}
	remotes, err := r.repo.Remotes()
	if err != nil {
		return "", "", false
	}
	for _, rem := range remotes {
		prefix := rem.Config().Name + "/"
		if strings.HasPrefix(name, prefix) {
			return rem.Config().Name, strings.TrimPrefix(name, prefix), true
		}
	}
	return "", "", false
}

func (r *Repository) checkoutRemote(ctx context.Context, wt *gogit.Worktree, remote, short, full string) error {
	l := log.FromContext(ctx)
	localRef := plumbing.NewBranchReferenceName(short)

	_, err := r.repo.Reference(localRef, true)
	switch {
	case err == nil:
		l.Debug("reusing local branch", "branch", short, "remote", remote)
		if err := wt.Checkout(&gogit.CheckoutOptions{Branch: localRef}); err != nil {
			return wrapErr(OperationFailed, err, "Failed to checkout %s", full)
		}
		return nil

	case errors.Is(err, plumbing.ErrReferenceNotFound):
		remoteRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, short), true)
		if err != nil {
			return wrapErr(OperationFailed, err, "Failed to checkout %s", full)
		}
		l.Debug("creating tracking branch", "branch", short, "remote", remote, "hash", remoteRef.Hash().String())
		err = wt.Checkout(&gogit.CheckoutOptions{
			Branch: localRef,
			Create: true,
			Hash:   remoteRef.Hash(),
		})
		if err != nil {
			return wrapErr(OperationFailed, err, "Failed to checkout %s", full)
		}
		// The switch already happened; a tracking-config failure is only a warning.
		err = r.repo.CreateBranch(&gitconfig.Branch{
			Name:   short,
			Remote: remote,
			Merge:  localRef,
		})
		if err != nil && !errors.Is(err, gogit.ErrBranchExists) {
			l.Warn("failed to record upstream", "branch", short, "err", err)
		}
		return nil

	default:
		return wrapErr(OperationFailed, err, "Failed to checkout %s", full)
	}
}
