package autoeq

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/model"
)

// AutoEq publishes parametric EQ profiles in two flat-text schemas:
//
// Tabular (ParametricEQ.csv):
//
//	Filter Type,Freq,Q,Gain
//	Preamp,0,0,-6.0
//	Peaking,100,1.4,-3.0
//
// Fixed-band text (<name> ParametricEQ.txt):
//
//	Preamp: -6.0 dB
//	Filter 1: ON PK Fc 100 Hz Gain -3.0 dB Q 1.41
//	Filter 2: OFF PK Fc 200 Hz Gain 0.0 dB Q 1.00
var (
	// filterLineRE matches one filter line of the fixed-band schema.
	// Groups: 1=ON/OFF, 2=type abbreviation, 3=frequency, 4=gain, 5=Q (optional).
	filterLineRE = regexp.MustCompile(`(?i)^\s*Filter\s+\d+\s*:\s*(ON|OFF)\s+(\S+)\s+Fc\s+([-+0-9.]+)\s*Hz\s+Gain\s+([-+0-9.]+)\s*dB(?:\s+Q\s+([-+0-9.]+))?`)

	// preampLineRE matches the labeled preamp line of the fixed-band schema.
	preampLineRE = regexp.MustCompile(`(?i)^\s*Preamp\s*:\s*([-+0-9.]+)\s*dB`)
)

// defaultShelfQ is used when a fixed-band shelf line omits the Q value,
// as older AutoEq exports do. 0.71 is the conventional Butterworth Q.
const defaultShelfQ = 0.71

// Parse extracts a Profile from raw AutoEq parametric EQ text.
//
// Detection is an ordered two-variant attempt: the tabular CSV schema is
// probed first (a recognizable header or row label in the first line),
// then the fixed-band line schema (at least one "Filter N:" line). If
// neither structural signature is present, Parse fails with
// ErrUnknownFormat.
//
// Within a matched schema, rows carrying a non-numeric or out-of-range
// value in a required column, or an unrecognized filter-type token, fail
// the whole parse with a *FieldError identifying the offending line and
// field. Lines marked OFF in the fixed-band schema are excluded from the
// result entirely.
//
// Example:
//
//	profile, err := autoeq.Parse(text)
//	if errors.Is(err, autoeq.ErrUnknownFormat) {
//	    fmt.Println("not an AutoEq parametric EQ file")
//	}
func Parse(raw string) (*model.Profile, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	if looksTabular(lines) {
		return parseTabular(raw)
	}
	if looksFixedBand(lines) {
		return parseFixedBand(lines)
	}
	return nil, ErrUnknownFormat
}

// looksTabular reports whether the first non-empty line has the
// structural signature of the tabular schema: a comma-delimited record
// whose first field is a known header name, a filter-type label, or the
// Preamp row label.
func looksTabular(lines []string) bool {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			return false
		}

		head := strings.ToLower(strings.TrimSpace(fields[0]))
		if head == "filter type" || head == "type" || head == "preamp" {
			return true
		}
		_, err := model.ParseFilterType(head)
		return err == nil
	}
	return false
}

// looksFixedBand reports whether any line matches the fixed-band filter
// template. The preamp line alone is not enough: it also appears in
// unrelated EqualizerAPO exports.
func looksFixedBand(lines []string) bool {
	for _, line := range lines {
		if filterLineRE.MatchString(line) {
			return true
		}
	}
	return false
}

// parseTabular reads the CSV schema. The column order is taken from the
// header row when one is present (Filter Type, Freq, Q, Gain), otherwise
// the same order is assumed positionally. A row labeled "Preamp"
// supplies the preamp value instead of a filter.
func parseTabular(raw string) (*model.Profile, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if len(records) == 0 {
		return nil, ErrUnknownFormat
	}

	// Default column layout, possibly overridden by a header row.
	typeCol, freqCol, qCol, gainCol := 0, 1, 2, 3

	start := 0
	if isHeaderRow(records[0]) {
		for i, name := range records[0] {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "filter type", "type":
				typeCol = i
			case "freq", "frequency", "fc":
				freqCol = i
			case "q":
				qCol = i
			case "gain":
				gainCol = i
			}
		}
		start = 1
	}

	profile := &model.Profile{}
	for i := start; i < len(records); i++ {
		record := records[i]
		line := i + 1

		if len(record) == 0 {
			continue
		}
		if len(record) <= typeCol {
			return nil, &FieldError{Line: line, Field: "row", Value: strings.Join(record, ","), Reason: "incomplete row"}
		}

		label := strings.TrimSpace(record[typeCol])
		if strings.EqualFold(label, "Preamp") {
			// The preamp row holds its value in the gain column when the
			// record is full-width, otherwise in the second field.
			valueCol := gainCol
			if len(record) <= gainCol {
				valueCol = 1
			}
			if len(record) <= valueCol {
				return nil, &FieldError{Line: line, Field: "preamp", Value: strings.Join(record, ","), Reason: "missing value"}
			}
			preamp, ferr := parseDecibel(line, "preamp", record[valueCol])
			if ferr != nil {
				return nil, ferr
			}
			profile.Preamp = preamp
			profile.HasPreamp = true
			continue
		}

		if len(record) <= gainCol || len(record) <= qCol || len(record) <= freqCol {
			return nil, &FieldError{Line: line, Field: "row", Value: strings.Join(record, ","), Reason: "incomplete row"}
		}

		filter, ferr := buildFilter(line, label, record[freqCol], record[qCol], record[gainCol])
		if ferr != nil {
			return nil, ferr
		}
		profile.Filters = append(profile.Filters, filter)
	}

	return profile, nil
}

// isHeaderRow reports whether a CSV record is a header rather than data.
// Header cells are alphabetic where data rows carry numbers.
func isHeaderRow(record []string) bool {
	if len(record) < 4 {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(record[0]))
	if head == "filter type" || head == "type" {
		return true
	}
	// A data row has numeric frequency; anything alphabetic there means header.
	_, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	return err != nil && !strings.EqualFold(head, "Preamp")
}

// parseFixedBand reads the line-oriented schema. Lines matching neither
// the filter template nor the preamp label are ignored; OFF filters are
// dropped.
func parseFixedBand(lines []string) (*model.Profile, error) {
	profile := &model.Profile{}

	for i, text := range lines {
		line := i + 1

		if m := preampLineRE.FindStringSubmatch(text); m != nil && !profile.HasPreamp {
			preamp, ferr := parseDecibel(line, "preamp", m[1])
			if ferr != nil {
				return nil, ferr
			}
			profile.Preamp = preamp
			profile.HasPreamp = true
			continue
		}

		m := filterLineRE.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if strings.EqualFold(m[1], "OFF") {
			continue
		}

		qToken := m[5]
		if qToken == "" {
			qToken = strconv.FormatFloat(defaultShelfQ, 'f', -1, 64)
		}

		filter, ferr := buildFilter(line, m[2], m[3], qToken, m[4])
		if ferr != nil {
			return nil, ferr
		}
		profile.Filters = append(profile.Filters, filter)
	}

	return profile, nil
}

// buildFilter validates and assembles one Filter from raw tokens.
func buildFilter(line int, typeToken, freqToken, qToken, gainToken string) (model.Filter, *FieldError) {
	ft, err := model.ParseFilterType(typeToken)
	if err != nil {
		return model.Filter{}, &FieldError{Line: line, Field: "type", Value: typeToken, Reason: "unrecognized filter type"}
	}

	freq, ferr := parseNumber(line, "frequency", freqToken)
	if ferr != nil {
		return model.Filter{}, ferr
	}
	if freq <= 0 {
		return model.Filter{}, &FieldError{Line: line, Field: "frequency", Value: freqToken, Reason: "must be positive"}
	}

	q, ferr := parseNumber(line, "q", qToken)
	if ferr != nil {
		return model.Filter{}, ferr
	}
	if q <= 0 {
		return model.Filter{}, &FieldError{Line: line, Field: "q", Value: qToken, Reason: "must be positive"}
	}

	gain, ferr := parseNumber(line, "gain", gainToken)
	if ferr != nil {
		return model.Filter{}, ferr
	}

	return model.Filter{Type: ft, Frequency: freq, Q: q, Gain: gain}, nil
}

// parseNumber parses a numeric token, tolerating an optional sign and
// decimal point. Anything else is a FieldError naming the field.
func parseNumber(line int, field, token string) (float64, *FieldError) {
	value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, &FieldError{Line: line, Field: field, Value: token, Reason: "not a number"}
	}
	return value, nil
}

// parseDecibel parses a preamp value, stripping a trailing "dB" unit if
// the source carries one ("-6.0 dB" and "-6.0" are both accepted).
func parseDecibel(line int, field, token string) (float64, *FieldError) {
	token = strings.TrimSpace(token)
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[0]
	}
	return parseNumber(line, field, token)
}
