package repository

import (
	"strings"

	"github.com/compozy/githelper/internal/domain"
)

const (
	currentBranchMarker  = "*"
	worktreeBranchMarker = "+"
	peeledTagSuffix      = "^{}"
)

// refNames extracts the short names from ls-remote output, dropping peeled duplicates.
func refNames(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		name := line[strings.LastIndex(line, "/")+1:]
		name = strings.TrimSuffix(name, peeledTagSuffix)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// branchLine strips the marker column of `git branch` output.
// It reports false for the current branch and for detached HEAD entries.
func branchLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", false
	case strings.HasPrefix(line, currentBranchMarker):
		return "", false
	case strings.HasPrefix(line, worktreeBranchMarker):
		line = strings.TrimSpace(strings.TrimPrefix(line, worktreeBranchMarker))
	}
	return line, line != ""
}

func parseBranches(lines []string) []string {
	branches := make([]string, 0, len(lines))
	for _, raw := range lines {
		if line, ok := branchLine(raw); ok {
			branches = append(branches, line)
		}
	}
	return branches
}

func parseMergedBranches(lines []string, excluded []string) []string {
	branches := make([]string, 0, len(lines))
	for _, name := range parseBranches(lines) {
		if isExcludedBranch(name, excluded) {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}

func isExcludedBranch(name string, excluded []string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range excluded {
		if pattern == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// parseBranchMap maps local branches to their upstream using `git branch -vv` output.
// Only a bracket segment directly after the commit hash names the upstream.
func parseBranchMap(lines []string) map[string]string {
	branches := make(map[string]string, len(lines))
	for _, raw := range lines {
		line, ok := branchLine(raw)
		if !ok {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name, hash := fields[0], fields[1]
		rest := strings.TrimSpace(line[len(name):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, hash))
		// branches checked out in another worktree list the worktree path first
		if strings.HasPrefix(rest, "(") {
			end := strings.Index(rest, ")")
			if end < 0 {
				continue
			}
			rest = strings.TrimSpace(rest[end+1:])
		}
		if !strings.HasPrefix(rest, "[") {
			continue
		}
		end := strings.IndexAny(rest, ":]")
		if end <= 1 {
			continue
		}
		branches[name] = rest[1:end]
	}
	return branches
}

// statusTracking returns the tracking segment of a `git status -sb` header,
// e.g. "[ahead 1, behind 2]", or an empty string when in sync.
func statusTracking(lines []string) string {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "##") {
		return ""
	}
	header := lines[0]
	idx := strings.LastIndex(header, " [")
	if idx < 0 || !strings.HasSuffix(header, "]") {
		return ""
	}
	return header[idx+1:]
}

// parseToolVersion reads "git version 2.39.2.windows.1" as 2.39.2.
func parseToolVersion(out string) (domain.Version, error) {
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return domain.Version{}, domain.NewInvalidFormatError(out)
	}
	parts := strings.Split(fields[2], ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return domain.ParseVersion(strings.Join(parts, "."))
}

// splitRemoteBranch splits "origin/feature/x" into "origin" and "feature/x".
func splitRemoteBranch(name string) (remote, branch string, ok bool) {
	remote, branch, ok = strings.Cut(name, "/")
	if !ok || remote == "" || branch == "" {
		return "", "", false
	}
	return remote, branch, true
}
