package model

import (
	"testing"
)

func TestParseFilterType(t *testing.T) {
	tests := []struct {
		token   string
		want    FilterType
		wantErr bool
	}{
		{"Peaking", Peaking, false},
		{"peaking", Peaking, false},
		{"PK", Peaking, false},
		{"Low Shelf", LowShelf, false},
		{"LowShelf", LowShelf, false},
		{"LSC", LowShelf, false},
		{"ls", LowShelf, false},
		{"High Shelf", HighShelf, false},
		{"HighShelf", HighShelf, false},
		{"HSC", HighShelf, false},
		{"hs", HighShelf, false},
		{"  low   shelf  ", LowShelf, false},
		{"Notch", 0, true},
		{"BandPass", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseFilterType(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFilterType(%q) expected error, got %v", tt.token, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilterType(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilterType(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFilterType_Code(t *testing.T) {
	tests := []struct {
		ft   FilterType
		want int
	}{
		{Peaking, 0},
		{LowShelf, 1},
		{HighShelf, 2},
	}

	for _, tt := range tests {
		if got := tt.ft.Code(); got != tt.want {
			t.Errorf("%v.Code() = %d, want %d", tt.ft, got, tt.want)
		}
	}
}

func TestBypassSlot(t *testing.T) {
	slot := BypassSlot()

	if slot.Enabled {
		t.Error("bypass slot should be disabled")
	}
	if slot.Gain != 0 {
		t.Errorf("bypass slot gain = %v, want 0", slot.Gain)
	}
	if slot.Frequency <= 0 || slot.Q <= 0 {
		t.Errorf("bypass slot placeholders should be positive, got freq=%v q=%v", slot.Frequency, slot.Q)
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		profile string
		model   string
		want    string
	}{
		{
			name:    "default template",
			format:  "{profile}_{model}",
			profile: "Sennheiser HD 650",
			model:   "FIIO KA17",
			want:    "Sennheiser_HD_650_FIIO_KA17.xml",
		},
		{
			name:    "explicit extension kept",
			format:  "{profile}.xml",
			profile: "AKG K371",
			model:   "FIIO KA17",
			want:    "AKG_K371.xml",
		},
		{
			name:    "invalid characters sanitized",
			format:  "{profile}",
			profile: "Weird/Name: v2",
			model:   "FIIO KA17",
			want:    "Weird_Name__v2.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputFileName(tt.format, tt.profile, tt.model)
			if got != tt.want {
				t.Errorf("OutputFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.xml", "normal-file.xml"},
		{"file:with:colons", "file_with_colons"},
		{"file<with>brackets", "file_with_brackets"},
		{"file/with\\slashes", "file_with_slashes"},
		{"file|with|pipes", "file_with_pipes"},
		{"file?with*wildcards", "file_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
