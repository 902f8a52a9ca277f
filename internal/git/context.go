package git

import (
	"crypto/sha256"
	"encoding/hex"
)

// Context is the staged-change snapshot taken once per invocation.
// Fields left empty by a failed git query are tolerated downstream.
type Context struct {
	Branch  string
	Files   string
	Numstat string
	RawDiff string
	Digest  string
}

// Collect reads the staged state from g. It never fails; missing pieces
// come back as empty strings.
func Collect(g Git) Context {
	raw := g.StagedDiff()
	return Context{
		Branch:  g.CurrentBranch(),
		Files:   g.StagedFiles(),
		Numstat: g.Numstat(),
		RawDiff: raw,
		Digest:  Digest(raw),
	}
}

// Digest returns a short stable identifier for a diff, used to correlate
// log lines with the change they describe.
func Digest(diff string) string {
	sum := sha256.Sum256([]byte(diff))
	return hex.EncodeToString(sum[:])[:12]
}
