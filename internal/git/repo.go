package git

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/dcarrot2/g-branches/internal/log"
)

// DetachedHead is the display-only sentinel returned by CurrentBranchName
// when HEAD points directly at a commit instead of a branch.
const DetachedHead = "HEAD (detached)"

// Repository is a handle on an opened git repository. It is acquired once at
// startup and used sequentially for the lifetime of the process.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository at path, searching parent directories for the
// git metadata. An empty path means the current working directory.
func Open(path string) (*Repository, error) {
	display := path
	if path == "" {
		path = "."
		display = "current directory"
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, wrapErr(RepositoryNotFound, err, "Not a git repository: %s", display)
	}
	return &Repository{repo: repo}, nil
}

// Root returns the filesystem path of the repository's working tree.
func (r *Repository) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to resolve repository root")
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranchName returns the short name of the checked-out branch, or the
// DetachedHead sentinel when HEAD points directly at a commit.
func (r *Repository) CurrentBranchName() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get current branch")
	}
	if !head.Name().IsBranch() {
		return DetachedHead, nil
	}
	return head.Name().Short(), nil
}

// ListBranches returns all local branches (and remote-tracking branches when
// includeRemote is set) sorted by commit time, newest first. Refs whose tip
// commit cannot be read are logged and skipped. An empty result is the
// NoBranchesFound failure.
func (r *Repository) ListBranches(ctx context.Context, includeRemote bool) ([]Branch, error) {
	l := log.FromContext(ctx)

	current, err := r.CurrentBranchName()
	if err != nil {
		// A fresh repository has an unborn HEAD; nothing is current then.
		l.Debug("no current branch", "err", err)
		current = ""
	}

	var branches []Branch

	locals, err := r.repo.Branches()
	if err != nil {
		return nil, wrapErr(OperationFailed, err, "Failed to fetch branches")
	}
	err = locals.ForEach(func(ref *plumbing.Reference) error {
		b, err := r.branchRecord(ref, current, false)
		if err != nil {
			l.Warn("skipping branch", "ref", ref.Name().Short(), "err", err)
			return nil
		}
		branches = append(branches, b)
		return nil
	})
	if err != nil {
		return nil, wrapErr(OperationFailed, err, "Failed to fetch branches")
	}

	if includeRemote {
		refs, err := r.repo.References()
		if err != nil {
			return nil, wrapErr(OperationFailed, err, "Failed to fetch branches")
		}
		err = refs.ForEach(func(ref *plumbing.Reference) error {
			if !ref.Name().IsRemote() || ref.Type() != plumbing.HashReference {
				return nil
			}
			// origin/HEAD points at the remote's default branch, not a branch
			if strings.HasSuffix(ref.Name().Short(), "/HEAD") {
				return nil
			}
			b, err := r.branchRecord(ref, current, true)
			if err != nil {
				l.Warn("skipping remote ref", "ref", ref.Name().Short(), "err", err)
				return nil
			}
			branches = append(branches, b)
			return nil
		})
		if err != nil {
			return nil, wrapErr(OperationFailed, err, "Failed to fetch branches")
		}
	}

	if len(branches) == 0 {
		return nil, &Error{Kind: NoBranchesFound, Msg: "No branches found in repository"}
	}

	sort.SliceStable(branches, func(i, j int) bool {
		return branches[i].Committed.After(branches[j].Committed)
	})

	l.Debug("listed branches", "count", len(branches), "remote", includeRemote)
	return branches, nil
}

// branchRecord builds the Branch for one ref from its tip commit.
func (r *Repository) branchRecord(ref *plumbing.Reference, current string, remote bool) (Branch, error) {
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return Branch{}, fmt.Errorf("resolve tip of %s: %w", ref.Name().Short(), err)
	}
	name := ref.Name().Short()
	return Branch{
		Name:      name,
		Hash:      commit.Hash.String(),
		Committed: commit.Committer.When,
		Summary:   commitSummary(commit),
		IsCurrent: !remote && name == current,
		IsRemote:  remote,
	}, nil
}

// commitSummary returns the first line of the commit message.
func commitSummary(commit *object.Commit) string {
	msg := strings.TrimSpace(commit.Message)
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}
