package fiio

import (
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/model"
)

// DefaultDSPModel is the device model written to presets when the
// caller does not specify one.
const DefaultDSPModel = "FIIO KA17"

// Preset is a complete FiiO DSP EQ preset ready for serialization.
//
// A Preset is built fresh per conversion and is a pure data value;
// Serialize renders it to the device XML.
type Preset struct {
	// Name is the style name shown by the FiiO Control app, normally the
	// headphone profile name.
	Name string

	// DSPModel is the target device model, e.g. "FIIO KA17".
	DSPModel string

	// MasterGain is the preset-wide gain in dB, derived from the
	// profile's preamp.
	MasterGain float64

	// Slots is the fixed ten-slot filter bank.
	Slots model.SlotBank
}

// Options control how a Profile is mapped into a Preset.
type Options struct {
	// DSPModel overrides the device model name. Empty means
	// DefaultDSPModel.
	DSPModel string

	// SuppressGain forces the master gain to 0 regardless of the
	// profile's preamp, for users who manage volume headroom on the
	// device instead.
	SuppressGain bool
}

// BuildPreset maps a parsed profile into a device preset.
//
// The mapping is deterministic and total: it always produces exactly
// model.SlotCount slots. Bands fill slots in source order; bands beyond
// the slot count are silently discarded (a capacity constraint of the
// device, not a data error) and slots beyond the band count are left in
// bypass. The mapper never reorders bands, since the device applies
// slots positionally in signal-chain order.
func BuildPreset(profile *model.Profile, opts Options) *Preset {
	dspModel := opts.DSPModel
	if dspModel == "" {
		dspModel = DefaultDSPModel
	}

	return &Preset{
		Name:       profile.Name,
		DSPModel:   dspModel,
		MasterGain: masterGain(profile, opts.SuppressGain),
		Slots:      MapToSlots(profile.Filters),
	}
}

// MapToSlots distributes bands into the fixed filter bank.
//
// Slot i mirrors filters[i] for i < min(len(filters), SlotCount); every
// remaining slot is a bypass placeholder. The returned bank is always
// fully populated.
func MapToSlots(filters []model.Filter) model.SlotBank {
	var bank model.SlotBank
	for i := range bank {
		if i < len(filters) {
			f := filters[i]
			bank[i] = model.Slot{
				Enabled:   true,
				Type:      f.Type,
				Frequency: f.Frequency,
				Q:         f.Q,
				Gain:      f.Gain,
			}
			continue
		}
		bank[i] = model.BypassSlot()
	}
	return bank
}

// Truncated reports whether mapping the given bands would drop any
// beyond the device's slot capacity. Useful for warning the user.
func Truncated(filters []model.Filter) bool {
	return len(filters) > model.SlotCount
}

// masterGain derives the preset master gain from the profile preamp.
// Suppression wins over everything; an absent preamp means 0 dB.
func masterGain(profile *model.Profile, suppress bool) float64 {
	if suppress || !profile.HasPreamp {
		return 0
	}
	return profile.Preamp
}
