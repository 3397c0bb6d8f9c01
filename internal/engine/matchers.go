package engine

import (
	"regexp"
	"strings"
)

// The classification substrate is pattern tests over option label text, so the
// rules stay tolerant of minor wording changes in the questionnaire.

func rx(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

func matchesAny(val string, patterns ...*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(val) {
			return true
		}
	}
	return false
}

func anyEntryMatches(entries []string, patterns ...*regexp.Regexp) bool {
	for _, e := range entries {
		if matchesAny(e, patterns...) {
			return true
		}
	}
	return false
}

func lower(s string) string {
	return strings.ToLower(s)
}
