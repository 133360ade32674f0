// Package questionbank holds the static interview question catalog used when
// no generative service is configured. The catalog is immutable and loaded at
// process start; lookups are deterministic so sessions are reproducible.
package questionbank

import "strings"

// Entry is one catalog question with its reference answer and technology tags.
type Entry struct {
	Text           string
	Type           string // technical, problem-solving, experience
	Difficulty     string // easy, medium, hard
	ExpectedAnswer string
	Technologies   []string
}

// DefaultRole is used when the requested role has no entry list.
const DefaultRole = "Full Stack Developer"

// Lookup selects up to count questions for the role, preferring entries whose
// technology tags match one of the requested technologies. Matching is a
// case-insensitive substring test in either direction. If filtering leaves
// nothing, the filter is dropped and the full role list is used instead, so a
// non-empty role list never produces an empty result.
func Lookup(role string, technologies []string, count int) []Entry {
	entries, ok := catalog[role]
	if !ok {
		entries = catalog[DefaultRole]
	}

	if len(technologies) > 0 {
		if filtered := filterByTechnologies(entries, technologies); len(filtered) > 0 {
			entries = filtered
		}
	}

	if count < 0 {
		count = 0
	}
	if count < len(entries) {
		entries = entries[:count]
	}
	return entries
}

// Roles lists the roles the catalog knows about.
func Roles() []string {
	roles := make([]string, 0, len(catalog))
	for role := range catalog {
		roles = append(roles, role)
	}
	return roles
}

func filterByTechnologies(entries []Entry, technologies []string) []Entry {
	var filtered []Entry
	for _, entry := range entries {
		if matchesAny(entry.Technologies, technologies) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesAny(tags, technologies []string) bool {
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, tech := range technologies {
			techLower := strings.ToLower(tech)
			if strings.Contains(tagLower, techLower) || strings.Contains(techLower, tagLower) {
				return true
			}
		}
	}
	return false
}
