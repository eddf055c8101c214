package model

import (
	"fmt"
	"strings"
)

// FilterType identifies the shape of a parametric EQ band.
//
// AutoEq profiles use three filter shapes, and FiiO devices encode them
// as small integer codes in their DSP presets:
//   - Peaking: boosts/cuts a narrow band around the center frequency
//   - LowShelf: boosts/cuts everything below the corner frequency
//   - HighShelf: boosts/cuts everything above the corner frequency
type FilterType int

const (
	// Peaking is a bell filter centered on the frequency (FiiO code 0).
	Peaking FilterType = iota

	// LowShelf shelves frequencies below the corner frequency (FiiO code 1).
	LowShelf

	// HighShelf shelves frequencies above the corner frequency (FiiO code 2).
	HighShelf
)

// Code returns the integer type code used in FiiO DSP XML.
func (ft FilterType) Code() int {
	return int(ft)
}

// String returns the canonical AutoEq name for the filter type.
func (ft FilterType) String() string {
	switch ft {
	case Peaking:
		return "Peaking"
	case LowShelf:
		return "Low Shelf"
	case HighShelf:
		return "High Shelf"
	default:
		return fmt.Sprintf("FilterType(%d)", int(ft))
	}
}

// ParseFilterType resolves a filter-type token from either AutoEq schema.
//
// Accepted tokens (case-insensitive):
//   - Tabular names: "Peaking", "Low Shelf" / "LowShelf", "High Shelf" / "HighShelf"
//   - Fixed-band abbreviations: "PK", "LSC" / "LS", "HSC" / "HS"
//
// Any other token is an error: an unknown filter shape cannot be mapped
// to a device type code, so the caller must fail the parse rather than
// guess.
func ParseFilterType(token string) (FilterType, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(token), " "))
	switch normalized {
	case "peaking", "pk":
		return Peaking, nil
	case "low shelf", "lowshelf", "lsc", "ls":
		return LowShelf, nil
	case "high shelf", "highshelf", "hsc", "hs":
		return HighShelf, nil
	default:
		return 0, fmt.Errorf("unknown filter type %q", token)
	}
}

// Filter is one parametric EQ band parsed from an AutoEq profile.
//
// Filters are created once by the parser and never mutated afterwards.
// Frequency and Q are always positive for a filter produced by a
// successful parse; Gain may be any signed value.
type Filter struct {
	// Type is the filter shape.
	Type FilterType

	// Frequency is the center (or corner) frequency in Hz.
	Frequency float64

	// Q is the quality factor controlling the filter width.
	Q float64

	// Gain is the boost or cut in dB.
	Gain float64
}

// Profile is the parsed content of one AutoEq parametric EQ file.
//
// Filters preserve the band order of the source file; the order is
// meaningful because device slots are applied positionally in
// signal-chain order.
type Profile struct {
	// Name is the headphone profile name, used for preset labeling and
	// output file naming. May be empty when parsing raw text directly.
	Name string

	// Filters holds the enabled bands in source order. Bands marked OFF
	// in the source never appear here.
	Filters []Filter

	// Preamp is the profile's preamp value in dB. Only meaningful when
	// HasPreamp is true.
	Preamp float64

	// HasPreamp reports whether the source supplied a preamp value.
	// When false, downstream consumers treat the preamp as 0 dB.
	HasPreamp bool
}
