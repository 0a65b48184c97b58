package git

import (
	"fmt"
	"strings"
	"time"
)

// Branch describes one branch for display: its tip commit metadata and
// whether it is the currently checked-out branch. Records are built fresh
// on every listing and never persisted.
type Branch struct {
	Name      string
	Hash      string
	Committed time.Time
	Summary   string
	IsCurrent bool
	IsRemote  bool
}

// ShortHash returns the first 7 characters of the tip commit hash.
func (b Branch) ShortHash() string {
	if len(b.Hash) < 7 {
		return b.Hash
	}
	return b.Hash[:7]
}

// DisplayName returns the branch name behind a current-branch marker.
func (b Branch) DisplayName() string {
	if b.IsCurrent {
		return "* " + b.Name
	}
	return "  " + b.Name
}

// FormattedDate returns the commit time in the commit's own timezone.
func (b Branch) FormattedDate() string {
	return b.Committed.Format("2006-01-02 15:04:05")
}

// CheckoutCommand returns the git invocation that switches to the
// branch. Remote branches get a local tracking branch named after the
// ref without its remote prefix.
func (b Branch) CheckoutCommand() string {
	if b.IsRemote {
		if _, local, ok := strings.Cut(b.Name, "/"); ok {
			return fmt.Sprintf("git checkout -b %s %s", local, b.Name)
		}
	}
	return "git checkout " + b.Name
}
