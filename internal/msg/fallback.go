package msg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// literalFallback is the last-resort message when even the numstat
// computation goes wrong.
const literalFallback = "chore: update files"

// Fallback synthesizes a commit message purely from numstat lines, with no
// model involved. It never returns an empty string.
func Fallback(numstat string) (out string) {
	defer func() {
		if recover() != nil || out == "" {
			out = literalFallback
		}
	}()

	var files []string
	adds, dels := 0, 0
	for _, line := range strings.Split(numstat, "\n") {
		if !strings.Contains(line, "\t") {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		adds += statCount(parts[0])
		dels += statCount(parts[1])
		files = append(files, parts[2])
	}

	scope := ""
	if scopes := topScopes(files); len(scopes) > 0 {
		scope = "(" + strings.Join(scopes, ",") + ")"
	}
	return fmt.Sprintf("chore%s: update %d files (+%d -%d)", scope, len(files), adds, dels)
}

// statCount parses a numstat add/delete field. "-" marks binary files and
// any non-numeric value counts as zero.
func statCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// topScopes returns up to two sorted distinct top-level path segments of
// files that contain a path separator.
func topScopes(files []string) []string {
	seen := map[string]bool{}
	for _, f := range files {
		if i := strings.Index(f, "/"); i > 0 {
			seen[f[:i]] = true
		}
	}
	scopes := make([]string, 0, len(seen))
	for s := range seen {
		scopes = append(scopes, s)
	}
	sort.Strings(scopes)
	if len(scopes) > 2 {
		scopes = scopes[:2]
	}
	return scopes
}
