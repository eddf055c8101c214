package model

// SlotCount is the number of EQ slots in the FiiO filter bank.
//
// The target devices expose exactly ten positional slots; presets must
// always carry ten entries, with unused slots left in bypass.
const SlotCount = 10

// Bypass placeholder values for slots with no corresponding input band.
// The values are inert (the slot is disabled) but kept at a neutral,
// device-friendly setting.
const (
	BypassFrequency = 1000.0
	BypassQ         = 1.0
)

// Slot is one fixed positional entry in the device's filter bank.
//
// Type, Frequency, Q and Gain are only meaningful when Enabled is true;
// a disabled slot carries the bypass placeholders so the serialized
// preset still has a complete, well-formed entry at every position.
type Slot struct {
	// Enabled reports whether the slot carries an active filter.
	Enabled bool

	// Type is the filter shape for an enabled slot.
	Type FilterType

	// Frequency is the filter frequency in Hz.
	Frequency float64

	// Q is the filter quality factor.
	Q float64

	// Gain is the filter gain in dB.
	Gain float64
}

// SlotBank is the fixed ten-slot filter bank of a FiiO preset.
//
// Using an array rather than a slice makes the "always exactly ten
// slots" invariant structural: a SlotBank cannot be created with the
// wrong length.
type SlotBank [SlotCount]Slot

// BypassSlot returns a disabled slot with the conventional placeholder
// values.
func BypassSlot() Slot {
	return Slot{
		Enabled:   false,
		Type:      Peaking,
		Frequency: BypassFrequency,
		Q:         BypassQ,
		Gain:      0,
	}
}
