// Package git provides repository access for g-branches via go-git.
//
// All operations run in-process against the repository's object database
// using [github.com/go-git/go-git/v5] rather than shelling out to the git
// CLI. A [Repository] handle is opened once at startup and used sequentially
// for the lifetime of the process.
//
// # Branch Listing
//
// [Repository.ListBranches] walks local branch refs (and remote-tracking
// refs when requested) and builds one [Branch] record per ref from its tip
// commit. Records are sorted by commit time, newest first. Refs whose tip
// cannot be read are logged and skipped so a single broken ref does not
// abort the listing; synthetic pointers like origin/HEAD are excluded.
//
// # Diffs
//
// [Repository.LastCommitDiff] renders the patch a branch tip introduced:
// tip against its first parent, or against the empty tree for root commits.
// An empty patch yields the [NoChanges] sentinel rather than an empty string.
//
// # Checkout
//
// [Repository.Checkout] switches to a local branch directly. Remote-tracking
// names (origin/foo) create or reuse the local short-named branch, record
// the upstream in config, and then switch. A failed switch leaves the
// working state untouched.
//
// # Errors
//
// Every failure is an [*Error] carrying an [ErrorKind]:
// [RepositoryNotFound], [NoBranchesFound], or [OperationFailed]. The command
// layer matches kinds exhaustively to pick messages and exit codes.
package git
