package git

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/dcarrot2/g-branches/internal/log"
)

// NoChanges is returned by LastCommitDiff when the tip commit's patch is empty.
const NoChanges = "No changes in this commit"

// LastCommitDiff renders the patch introduced by the tip commit of the named
// branch: tip against its first parent, or against the empty tree for root
// commits. The result concatenates the textual patch of every changed file;
// an empty patch yields the NoChanges sentinel.
func (r *Repository) LastCommitDiff(ctx context.Context, branchName string) (string, error) {
	l := log.FromContext(ctx)

	hash, err := r.repo.ResolveRevision(plumbing.Revision(branchName))
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
	}

	// Root commits have no parent; a nil tree diffs against the empty tree.
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
	}
	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return "", wrapErr(OperationFailed, err, "Failed to get diff for %s", branchName)
	}

	text := patch.String()
	if strings.TrimSpace(text) == "" {
		return NoChanges, nil
	}
	l.Debug("computed diff", "branch", branchName, "files", len(patch.FilePatches()))
	return text, nil
}
