package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions orders two plugin version strings.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Plain semver strings are compared with semver precedence ("v" prefix
// tolerated). Four-component assembly-style versions ("10.8.2.1") compare
// on their first three components, with the trailing revision as a tiebreak.
func CompareVersions(a, b string) (int, error) {
	av, arev, err := parseVersion(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, brev, err := parseVersion(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}

	if c := av.Compare(bv); c != 0 {
		return c, nil
	}
	switch {
	case arev < brev:
		return -1, nil
	case arev > brev:
		return 1, nil
	}
	return 0, nil
}

// parseVersion parses a feed version string, splitting the fourth component
// of an assembly-style version off as a revision number.
func parseVersion(s string) (*semver.Version, int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	if parts := strings.Split(s, "."); len(parts) == 4 {
		rev, revErr := strconv.Atoi(parts[3])
		if revErr == nil {
			if v, err := semver.NewVersion(strings.Join(parts[:3], ".")); err == nil {
				return v, rev, nil
			}
		}
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, 0, err
	}
	return v, 0, nil
}

// Latest returns the most recent version record of p, and false for an
// entry with no history. Histories are newest-first, so the head record is
// the default; when every record carries a comparable version number the
// highest one is preferred instead, which keeps hand-edited feeds honest.
func Latest(p Plugin) (Version, bool) {
	if len(p.Versions) == 0 {
		return Version{}, false
	}

	best := p.Versions[0]
	for _, rec := range p.Versions[1:] {
		c, err := CompareVersions(rec.Version, best.Version)
		if err != nil {
			// Incomparable history falls back to feed order.
			return p.Versions[0], true
		}
		if c > 0 {
			best = rec
		}
	}
	return best, true
}
