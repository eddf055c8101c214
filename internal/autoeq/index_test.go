package autoeq

import (
	"errors"
	"testing"
)

func TestParseIndex(t *testing.T) {
	markdown := `# Index

Some introductory prose with a [stray link](https://example.com).

- [AKG K371](./oratory1990/over-ear/AKG K371/)
* [Sennheiser HD 650](./oratory1990/over-ear/Sennheiser HD 650/)
- [Sennheiser HD 650](./crinacle/over-ear/Sennheiser HD 650/)
- [No Path]()
`

	entries, err := ParseIndex(markdown)
	if err != nil {
		t.Fatalf("ParseIndex failed: %v", err)
	}

	// Duplicate name keeps the first occurrence; empty path dropped;
	// non-list link ignored.
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2: %v", len(entries), entries)
	}

	if entries[0].Name != "AKG K371" {
		t.Errorf("entries[0].Name = %q", entries[0].Name)
	}
	if entries[0].Path != "oratory1990/over-ear/AKG K371/" {
		t.Errorf("entries[0].Path = %q", entries[0].Path)
	}
	if entries[1].Path != "oratory1990/over-ear/Sennheiser HD 650/" {
		t.Errorf("duplicate should keep first path, got %q", entries[1].Path)
	}
}

func TestParseIndex_Empty(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
	}{
		{"empty document", ""},
		{"no list lines", "Just prose, no entries here."},
		{"list without links", "- plain bullet\n* another one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex(tt.markdown)
			if !errors.Is(err, ErrNoProfiles) {
				t.Errorf("ParseIndex() error = %v, want ErrNoProfiles", err)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	entries := []Entry{
		{Name: "AKG K371", Path: "a/"},
		{Name: "Sennheiser HD 650", Path: "b/"},
		{Name: "Sennheiser HD 800 S", Path: "c/"},
	}

	tests := []struct {
		term string
		want int
	}{
		{"", 3},
		{"sennheiser", 2},
		{"HD 650", 1},
		{"hd", 2},
		{"beyerdynamic", 0},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Search(entries, tt.term)
			if len(got) != tt.want {
				t.Errorf("Search(%q) returned %d entries, want %d", tt.term, len(got), tt.want)
			}
		})
	}
}
