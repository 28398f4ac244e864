package stamper

import (
	"fmt"
	"regexp"

	"github.com/indaco/stamper/internal/coordinate"
)

// State classifies a document against a target coordinate.
type State int

const (
	// NotFound means the document has no "group:artifact:<version>" reference.
	NotFound State = iota
	// AlreadyCurrent means the first reference already carries the target version.
	AlreadyCurrent
	// Stale means the first reference carries a different version.
	Stale
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case NotFound:
		return "not-found"
	case AlreadyCurrent:
		return "already-current"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// versionChars are the characters a version token may contain.
const versionChars = `0-9A-Za-z._+-`

// versionTokenPattern matches a run of version characters that starts and
// ends with a letter or digit, so surrounding markup such as "**", ")", "|",
// "</version>" or a sentence-ending period is never captured.
const versionTokenPattern = `[0-9A-Za-z](?:[` + versionChars + `]*[0-9A-Za-z])?`

// Match describes where the version token of the first reference sits.
type Match struct {
	// Found reports whether a reference was located.
	Found bool
	// Token is the captured version token.
	Token string
	// Start and End are byte offsets of Token in the document.
	Start int
	End   int
}

// referencePattern compiles the pattern for c's "group:artifact:" prefix
// followed by a version token.
func referencePattern(c coordinate.Coordinate) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(c.Prefix()) + "(" + versionTokenPattern + ")")
}

// Find locates the first reference to c in doc.
// A prefix that is not followed by a token does not count as a reference.
func Find(doc []byte, c coordinate.Coordinate) Match {
	re := referencePattern(c)
	loc := re.FindSubmatchIndex(doc)
	if loc == nil {
		return Match{}
	}
	return Match{
		Found: true,
		Token: string(doc[loc[2]:loc[3]]),
		Start: loc[2],
		End:   loc[3],
	}
}

// Classify compares the match against the target version.
// Versions are compared as plain strings.
func Classify(m Match, target string) State {
	switch {
	case !m.Found:
		return NotFound
	case m.Token == target:
		return AlreadyCurrent
	default:
		return Stale
	}
}

// Replace returns a copy of doc with the matched token swapped for version.
func Replace(doc []byte, m Match, version string) []byte {
	if !m.Found {
		return append([]byte(nil), doc...)
	}
	out := make([]byte, 0, len(doc)-len(m.Token)+len(version))
	out = append(out, doc[:m.Start]...)
	out = append(out, version...)
	out = append(out, doc[m.End:]...)
	return out
}
