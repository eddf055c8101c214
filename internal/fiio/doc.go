// Package fiio maps parsed AutoEq profiles onto FiiO device presets and
// serializes them as FiiO_DSP XML.
//
// # Mapping
//
// BuildPreset performs the band-to-slot mapping:
//
//	preset := fiio.BuildPreset(profile, fiio.Options{DSPModel: "FIIO KA17"})
//
// The mapping is total and deterministic: always exactly ten slots,
// bands kept in source order, excess bands truncated, unused slots left
// in bypass. Master gain follows the profile preamp unless suppressed.
//
// # Serialization
//
// Serialize renders the preset as the XML document the FiiO Control app
// imports:
//
//	xmlText, err := fiio.Serialize(preset)
//	os.WriteFile("preset.xml", []byte(xmlText), 0644)
//
// Numeric values are written in plain fixed-decimal form; the document
// always carries a complete ten-entry eqList so the device's positional
// slot layout is preserved.
package fiio
