// Package autoeq parses the AutoEq project's published data: the
// results index and the per-headphone parametric EQ profiles.
//
// The package handles two main use cases:
//
//  1. Parsing the results INDEX.md into searchable profile entries
//  2. Parsing profile text in either of AutoEq's two published schemas
//
// # Index Parsing
//
//	entries, err := autoeq.ParseIndex(markdown)
//	matches := autoeq.Search(entries, "hd 650")
//
// # Profile Parsing
//
// Parse detects the schema (tabular CSV first, then the fixed-band
// "Filter N: ON ..." line format) and produces an ordered band list
// plus the optional preamp value:
//
//	profile, err := autoeq.Parse(text)
//	switch {
//	case errors.Is(err, autoeq.ErrUnknownFormat):
//	    // neither schema matched
//	case err != nil:
//	    var fieldErr *autoeq.FieldError
//	    if errors.As(err, &fieldErr) {
//	        fmt.Printf("bad %s on line %d\n", fieldErr.Field, fieldErr.Line)
//	    }
//	}
//
// Parsing is strict where it matters for conversion safety: an
// unrecognized filter-type token or a malformed numeric field fails the
// whole parse, because such a band cannot be mapped to a device type
// code. Bands explicitly marked OFF are simply omitted.
package autoeq
