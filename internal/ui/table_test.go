package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/dcarrot2/g-branches/internal/git"
)

var testCommitTime = time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

func TestFormatBranchesTable(t *testing.T) {
	t.Parallel()

	branches := []git.Branch{
		{
			Name:      "main",
			Hash:      "0123456789abcdef0123456789abcdef01234567",
			Committed: testCommitTime,
			Summary:   "Add login flow",
			IsCurrent: true,
		},
		{
			Name:      "feature/auth",
			Hash:      "fedcba9876543210fedcba9876543210fedcba98",
			Committed: testCommitTime.Add(-24 * time.Hour),
			Summary:   "Wire up token refresh",
		},
	}

	out := FormatBranchesTable(branches)

	t.Run("includes title and headers", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{TableTitle, "Branch", "Commit", "Date", "Message"} {
			if !strings.Contains(out, want) {
				t.Errorf("table output missing %q", want)
			}
		}
	})

	t.Run("marks only the current branch", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(out, "* main") {
			t.Error("current branch should be marked with *")
		}
		if strings.Contains(out, "* feature/auth") {
			t.Error("non-current branch should not be marked")
		}
		if !strings.Contains(out, "feature/auth") {
			t.Error("non-current branch missing from table")
		}
	})

	t.Run("abbreviates hashes and formats dates", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(out, "0123456") {
			t.Error("short hash missing from table")
		}
		if strings.Contains(out, "0123456789abcdef") {
			t.Error("full hash should not appear in table")
		}
		if !strings.Contains(out, "2024-03-14 09:26:53") {
			t.Error("formatted date missing from table")
		}
	})

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()
		if strings.Index(out, "main") > strings.Index(out, "feature/auth") {
			t.Error("rows should keep the order of the input slice")
		}
	})
}

func TestFormatBranchesTable_Empty(t *testing.T) {
	t.Parallel()

	if out := FormatBranchesTable(nil); out != "" {
		t.Errorf("FormatBranchesTable(nil) = %q, want empty", out)
	}
}

func TestFormatBranchesTable_TruncatesLongMessages(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 70)
	branches := []git.Branch{
		{Name: "main", Hash: "1111111", Committed: testCommitTime, Summary: long},
	}

	out := FormatBranchesTable(branches)

	if !strings.Contains(out, strings.Repeat("x", 60)+"...") {
		t.Error("long message should be cut at 60 runes with an ellipsis")
	}
	if strings.Contains(out, strings.Repeat("x", 61)) {
		t.Error("message beyond 60 runes should not appear")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "hello", 10, "hello"},
		{"exact stays", "hello", 5, "hello"},
		{"long is cut", "hello world", 5, "hello..."},
		{"multibyte counted in runes", "héllo wörld", 5, "héllo..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestCenterIn(t *testing.T) {
	t.Parallel()

	if got := centerIn("ab", 6); got != "  ab" {
		t.Errorf("centerIn = %q, want %q", got, "  ab")
	}
	if got := centerIn("abcdef", 4); got != "abcdef" {
		t.Errorf("centerIn should not pad when wider than width, got %q", got)
	}
}
