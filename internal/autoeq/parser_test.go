package autoeq

import (
	"errors"
	"testing"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/model"
)

func TestParse_Tabular(t *testing.T) {
	input := "Filter Type,Freq,Q,Gain\n" +
		"Preamp,0,0,6.0\n" +
		"Peaking,100,1.4,-3\n" +
		"Low Shelf,105,0.7,4\n" +
		"High Shelf,8000,0.7,-2\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !profile.HasPreamp {
		t.Error("expected preamp to be present")
	}
	if profile.Preamp != 6.0 {
		t.Errorf("Preamp = %v, want 6.0", profile.Preamp)
	}
	if len(profile.Filters) != 3 {
		t.Fatalf("filter count = %d, want 3", len(profile.Filters))
	}

	want := []model.Filter{
		{Type: model.Peaking, Frequency: 100, Q: 1.4, Gain: -3},
		{Type: model.LowShelf, Frequency: 105, Q: 0.7, Gain: 4},
		{Type: model.HighShelf, Frequency: 8000, Q: 0.7, Gain: -2},
	}
	for i, f := range profile.Filters {
		if f != want[i] {
			t.Errorf("Filters[%d] = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestParse_TabularShortPreampRow(t *testing.T) {
	input := "Filter Type,Freq,Q,Gain\n" +
		"Preamp,-6.5\n" +
		"Peaking,210,0.55,-2.6\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !profile.HasPreamp || profile.Preamp != -6.5 {
		t.Errorf("Preamp = %v (set=%v), want -6.5", profile.Preamp, profile.HasPreamp)
	}
	if len(profile.Filters) != 1 {
		t.Errorf("filter count = %d, want 1", len(profile.Filters))
	}
}

func TestParse_FixedBand(t *testing.T) {
	input := "Preamp: -2.0 dB\n" +
		"Filter 1: ON PK Fc 100 Hz Gain -3 dB Q 1.4\n" +
		"Filter 2: OFF PK Fc 200 Hz Gain 0 dB Q 1.0\n" +
		"Filter 3: ON HSC Fc 8000 Hz Gain -2.5 dB Q 0.70\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !profile.HasPreamp || profile.Preamp != -2.0 {
		t.Errorf("Preamp = %v (set=%v), want -2.0", profile.Preamp, profile.HasPreamp)
	}

	// The OFF line must be omitted entirely, not kept as a disabled band.
	if len(profile.Filters) != 2 {
		t.Fatalf("filter count = %d, want 2", len(profile.Filters))
	}
	if profile.Filters[0].Frequency != 100 || profile.Filters[0].Type != model.Peaking {
		t.Errorf("Filters[0] = %+v", profile.Filters[0])
	}
	if profile.Filters[1].Frequency != 8000 || profile.Filters[1].Type != model.HighShelf {
		t.Errorf("Filters[1] = %+v", profile.Filters[1])
	}
}

func TestParse_FixedBandMissingQ(t *testing.T) {
	input := "Filter 1: ON LSC Fc 105 Hz Gain 4.0 dB\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(profile.Filters) != 1 {
		t.Fatalf("filter count = %d, want 1", len(profile.Filters))
	}
	if profile.Filters[0].Q != defaultShelfQ {
		t.Errorf("Q = %v, want default %v", profile.Filters[0].Q, defaultShelfQ)
	}
	if profile.HasPreamp {
		t.Error("no preamp line, HasPreamp should be false")
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prose", "This headphone sounds great with some EQ applied."},
		{"html", "<html><body>404</body></html>"},
		{"blank lines", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("Parse() error = %v, want ErrUnknownFormat", err)
			}
		})
	}
}

func TestParse_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "tabular unknown filter type",
			input:     "Filter Type,Freq,Q,Gain\nNotch,100,1.4,-3\n",
			wantField: "type",
		},
		{
			name:      "tabular non-numeric frequency",
			input:     "Filter Type,Freq,Q,Gain\nPeaking,abc,1.4,-3\n",
			wantField: "frequency",
		},
		{
			name:      "tabular negative frequency",
			input:     "Filter Type,Freq,Q,Gain\nPeaking,-100,1.4,-3\n",
			wantField: "frequency",
		},
		{
			name:      "tabular zero q",
			input:     "Filter Type,Freq,Q,Gain\nPeaking,100,0,-3\n",
			wantField: "q",
		},
		{
			name:      "tabular non-numeric gain",
			input:     "Filter Type,Freq,Q,Gain\nPeaking,100,1.4,loud\n",
			wantField: "gain",
		},
		{
			name:      "fixed-band unknown abbreviation",
			input:     "Filter 1: ON XYZ Fc 100 Hz Gain -3 dB Q 1.4\n",
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("Parse() error = %v, want *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
			if fieldErr.Line == 0 {
				t.Error("FieldError.Line should identify the offending line")
			}
		})
	}
}

// An unknown type anywhere fails the whole parse: no partial result.
func TestParse_UnknownTypeFailsWholeParse(t *testing.T) {
	input := "Filter Type,Freq,Q,Gain\n" +
		"Peaking,100,1.4,-3\n" +
		"Notch,200,1.0,2\n" +
		"Peaking,300,1.4,-1\n"

	profile, err := Parse(input)
	if err == nil {
		t.Fatalf("expected error, got profile with %d filters", len(profile.Filters))
	}
	if profile != nil {
		t.Error("failed parse should not return a partial profile")
	}
}

func TestParse_DetectionOrder(t *testing.T) {
	// A tabular document that happens to mention "Filter 1:" in a cell
	// must still be parsed as tabular, since tabular is probed first.
	input := "Filter Type,Freq,Q,Gain\n" +
		"Peaking,100,1.4,-3\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(profile.Filters) != 1 {
		t.Errorf("filter count = %d, want 1", len(profile.Filters))
	}
}

func TestParse_CRLFInput(t *testing.T) {
	input := "Preamp: -1.5 dB\r\nFilter 1: ON PK Fc 250 Hz Gain 2.0 dB Q 1.00\r\n"

	profile, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(profile.Filters) != 1 || profile.Preamp != -1.5 {
		t.Errorf("got %d filters, preamp %v", len(profile.Filters), profile.Preamp)
	}
}
