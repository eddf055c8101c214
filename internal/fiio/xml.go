package fiio

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// presetVersion is the FiiO_DSP schema version written to presets.
const presetVersion = "0.0.1"

// presetDescription is the fixed description child of every preset.
const presetDescription = "Converted from AutoEq"

// Wire structure of a FiiO Control DSP preset:
//
//	<FiiO_DSP model="FIIO KA17" version="0.0.1">
//	  <module name="EQ">
//	    <eqGroup>
//	      <param name="masterGain">-6.0</param>
//	      <eqList>
//	        <eq index="0">
//	          <param name="enabled">1</param>
//	          <param name="type">0</param>
//	          <param name="freq">100</param>
//	          <param name="gain">-3.0</param>
//	          <param name="q">1.4</param>
//	        </eq>
//	        ...
//	      </eqList>
//	    </eqGroup>
//	  </module>
//	  <styleName>Sennheiser HD 650</styleName>
//	  <description>Converted from AutoEq</description>
//	</FiiO_DSP>
type xmlPreset struct {
	XMLName     xml.Name  `xml:"FiiO_DSP"`
	Model       string    `xml:"model,attr"`
	Version     string    `xml:"version,attr"`
	Module      xmlModule `xml:"module"`
	StyleName   string    `xml:"styleName"`
	Description string    `xml:"description"`
}

type xmlModule struct {
	Name    string     `xml:"name,attr"`
	EQGroup xmlEQGroup `xml:"eqGroup"`
}

type xmlEQGroup struct {
	MasterGain xmlParam  `xml:"param"`
	EQList     xmlEQList `xml:"eqList"`
}

type xmlEQList struct {
	EQs []xmlEQ `xml:"eq"`
}

type xmlEQ struct {
	Index  string     `xml:"index,attr"`
	Params []xmlParam `xml:"param"`
}

type xmlParam struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Serialize renders the preset as a FiiO_DSP XML document.
//
// The output always carries exactly model.SlotCount <eq> elements in
// slot order; disabled slots are emitted with enabled=0 and their bypass
// placeholder values so the consuming device sees a complete bank.
// Numeric values use plain decimal formatting (no locale separators, no
// exponent notation). Serialization of a well-formed Preset cannot fail.
func Serialize(preset *Preset) (string, error) {
	doc := xmlPreset{
		Model:   preset.DSPModel,
		Version: presetVersion,
		Module: xmlModule{
			Name: "EQ",
			EQGroup: xmlEQGroup{
				MasterGain: xmlParam{Name: "masterGain", Value: formatDecimal(preset.MasterGain)},
				EQList:     xmlEQList{EQs: make([]xmlEQ, 0, len(preset.Slots))},
			},
		},
		StyleName:   preset.Name,
		Description: presetDescription,
	}

	for i, slot := range preset.Slots {
		enabled := "0"
		if slot.Enabled {
			enabled = "1"
		}
		doc.Module.EQGroup.EQList.EQs = append(doc.Module.EQGroup.EQList.EQs, xmlEQ{
			Index: strconv.Itoa(i),
			Params: []xmlParam{
				{Name: "enabled", Value: enabled},
				{Name: "type", Value: strconv.Itoa(slot.Type.Code())},
				{Name: "freq", Value: formatFrequency(slot.Frequency)},
				{Name: "gain", Value: formatDecimal(slot.Gain)},
				{Name: "q", Value: formatDecimal(slot.Q)},
			},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize preset: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}

// formatFrequency renders a frequency as a whole number of Hz, the
// representation the FiiO Control app itself uses.
func formatFrequency(hz float64) string {
	return strconv.Itoa(int(hz))
}

// formatDecimal renders a value with at most two decimal places and at
// least one, avoiding exponent notation and locale-dependent separators
// ("6" becomes "6.0", "-3.25" stays "-3.25").
func formatDecimal(v float64) string {
	rounded := math.Round(v*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
