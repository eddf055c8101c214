package model

import (
	"regexp"
	"strings"
)

// OutputFileName computes a preset file name from a template.
//
// The format supports placeholders that are replaced with actual values:
//   - {profile} - Headphone profile name
//   - {model}   - Target DSP model name
//
// Spaces in substituted values are replaced with underscores and the
// result is sanitized for the filesystem. A ".xml" extension is appended
// unless the template already ends in ".xml" or ".txt".
//
// Example:
//
//	OutputFileName("{profile}_{model}", "Sennheiser HD 650", "FIIO KA17")
//	// Returns "Sennheiser_HD_650_FIIO_KA17.xml"
func OutputFileName(format, profileName, dspModel string) string {
	name := format
	name = strings.ReplaceAll(name, "{profile}", strings.ReplaceAll(profileName, " ", "_"))
	name = strings.ReplaceAll(name, "{model}", strings.ReplaceAll(dspModel, " ", "_"))
	name = SanitizeFileName(name)

	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".xml") && !strings.HasSuffix(lower, ".txt") {
		name += ".xml"
	}
	return name
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	SanitizeFileName("AKG K240 Sextett (DF)") // unchanged
//	SanitizeFileName("HD 650: rev/2")         // Returns "HD 650_ rev_2"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
