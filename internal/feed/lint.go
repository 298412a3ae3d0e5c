package feed

import (
	"fmt"

	"github.com/google/uuid"
)

// Issue is a single finding from a feed health check.
type Issue struct {
	Entry   string // entry label the finding concerns ("name (guid)" or a position)
	Message string
}

// Lint checks the feed against the invariants the publish merge relies on
// and returns the findings in entry order. All findings are advisory: a
// feed with issues still publishes, but merges against it may not behave
// the way the maintainer expects. Duplicate guids in particular mean only
// the first match is ever updated.
func Lint(m Manifest) []Issue {
	var issues []Issue
	report := func(i int, format string, args ...any) {
		issues = append(issues, Issue{
			Entry:   entryLabel(m, i),
			Message: fmt.Sprintf(format, args...),
		})
	}

	firstGUID := make(map[string]int, len(m))
	for i, p := range m {
		if p.Name == "" {
			report(i, "entry has no name")
		}

		switch {
		case p.GUID == "":
			report(i, "entry has no guid")
		default:
			if prev, dup := firstGUID[p.GUID]; dup {
				report(i, "duplicate guid: first used by %s; a publish only updates the first match", entryLabel(m, prev))
			} else {
				firstGUID[p.GUID] = i
			}
			if _, err := uuid.Parse(p.GUID); err != nil {
				report(i, "guid %q is not an RFC 4122 UUID", p.GUID)
			}
		}

		lintHistory(m, i, report)
	}
	return issues
}

// lintHistory checks one entry's version records: blank or duplicate
// version numbers, and newest-first ordering where versions are comparable.
func lintHistory(m Manifest, i int, report func(int, string, ...any)) {
	seen := make(map[string]bool, len(m[i].Versions))
	for j, rec := range m[i].Versions {
		if rec.Version == "" {
			report(i, "record %d has no version number", j)
			continue
		}
		if seen[rec.Version] {
			report(i, "duplicate version %q in history", rec.Version)
		}
		seen[rec.Version] = true
	}

	for j := 0; j+1 < len(m[i].Versions); j++ {
		cur, next := m[i].Versions[j].Version, m[i].Versions[j+1].Version
		c, err := CompareVersions(cur, next)
		if err != nil {
			// Ordering is only checked while versions stay comparable.
			return
		}
		if c < 0 {
			report(i, "history not newest-first: %q listed above %q", cur, next)
			return
		}
	}
}

// entryLabel renders a human-readable reference to an entry for findings.
func entryLabel(m Manifest, i int) string {
	p := m[i]
	switch {
	case p.Name != "" && p.GUID != "":
		return fmt.Sprintf("%s (%s)", p.Name, p.GUID)
	case p.Name != "":
		return p.Name
	case p.GUID != "":
		return p.GUID
	}
	return fmt.Sprintf("entry %d", i)
}
