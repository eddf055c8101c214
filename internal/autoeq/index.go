package autoeq

import (
	"regexp"
	"strings"
)

// Entry is one headphone profile listed in the AutoEq results index.
type Entry struct {
	// Name is the headphone name as listed, e.g. "Sennheiser HD 650".
	Name string

	// Path is the profile directory relative to the results root, always
	// with a trailing slash, e.g. "oratory1990/over-ear/Sennheiser HD 650/".
	Path string
}

// indexEntryRE matches a markdown link: [name](path).
var indexEntryRE = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ParseIndex extracts profile entries from the AutoEq INDEX.md markdown.
//
// The index lists one profile per bullet line:
//
//	- [Sennheiser HD 650](./oratory1990/over-ear/Sennheiser HD 650/)
//
// Only list lines (starting with "*" or "-") are considered. Duplicate
// names keep the first occurrence, matching the index's own ordering of
// preferred results.
//
// Returns ErrNoProfiles if the document contains no recognizable
// entries.
func ParseIndex(markdown string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]struct{})

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "-") {
			continue
		}

		m := indexEntryRE.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		path := normalizePath(m[2])
		if name == "" || path == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, Entry{Name: name, Path: path})
	}

	if len(entries) == 0 {
		return nil, ErrNoProfiles
	}
	return entries, nil
}

// Search filters entries by case-insensitive substring match on the
// name. An empty term returns all entries.
func Search(entries []Entry, term string) []Entry {
	if term == "" {
		return entries
	}

	term = strings.ToLower(term)
	var matches []Entry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), term) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// normalizePath strips leading "./" and "/" markers and guarantees a
// single trailing slash so entry paths join cleanly with the raw base
// URL.
func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimLeft(path, "/")
	path = strings.TrimRight(path, "/")
	if path == "" {
		return ""
	}
	return path + "/"
}
