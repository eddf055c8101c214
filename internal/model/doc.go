// Package model defines the core data structures used throughout
// the AutoEq-to-FiiO converter.
//
// # Filter and Profile
//
// Filter represents one parametric EQ band; Profile is the parsed
// content of an AutoEq parametric EQ file:
//
//	profile := &model.Profile{
//	    Name:    "Sennheiser HD 650",
//	    Filters: []model.Filter{{Type: model.Peaking, Frequency: 100, Q: 1.4, Gain: -3}},
//	    Preamp:  -6.2, HasPreamp: true,
//	}
//
// # Slots
//
// Slot and SlotBank model the device side: a FiiO preset always carries
// exactly SlotCount (10) positional slots. SlotBank is a fixed-size
// array so the slot-count invariant is enforced by the type system.
//
// # File naming
//
// OutputFileName computes preset file names from {profile}/{model}
// placeholder templates, with filesystem sanitization applied.
package model
