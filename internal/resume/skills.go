package resume

import (
	"regexp"
	"sort"
	"strings"
)

// ExtractSkills matches the known vocabulary against the skills-section text.
// Matching is whole-word and case-insensitive, so a short language name never
// matches inside a longer one. Returns the sorted set of hits in the
// vocabulary's original casing.
func ExtractSkills(text string, vocabulary []string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})

	for _, skill := range vocabulary {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[strings.ToLower(trimmed)]; dup {
			continue
		}
		if wholeWordPattern(trimmed).MatchString(text) {
			found = append(found, trimmed)
			seen[strings.ToLower(trimmed)] = struct{}{}
		}
	}

	sort.Strings(found)
	return found
}

// wholeWordPattern builds a case-insensitive whole-word matcher. Word
// boundaries are only asserted next to word characters, so names like "C++"
// or "C#" keep their trailing symbols matchable.
func wholeWordPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)

	prefix := ""
	if isWordChar(rune(skill[0])) {
		prefix = `\b`
	}
	suffix := ""
	if isWordChar(rune(skill[len(skill)-1])) {
		suffix = `\b`
	}

	return regexp.MustCompile(`(?i)` + prefix + quoted + suffix)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
