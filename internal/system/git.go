package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// GitInfo is the version-control status shown next to the deck title.
type GitInfo struct {
	InRepo   bool
	Branch   string
	ShortSHA string
	Dirty    bool
}

// gitCallTimeout bounds each git invocation.
const gitCallTimeout = 800 * time.Millisecond

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, gitCallTimeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, "git", append([]string{"-C", dir}, args...)...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// GetGitInfo inspects the repository containing dir. A missing git binary
// or a directory outside any work tree yields a zero GitInfo and no error.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}
	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}
	if out, err := git(ctx, dir, "rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if out, err := git(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = out
	} else if out, err := git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// detached head
		gi.Branch = out
	}
	if out, err := git(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		gi.ShortSHA = out
	}
	if out, err := git(ctx, dir, "status", "--porcelain", "--", "."); err == nil {
		gi.Dirty = out != ""
	}
	return gi, nil
}
