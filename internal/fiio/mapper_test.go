package fiio

import (
	"testing"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/model"
)

func makeFilters(n int) []model.Filter {
	filters := make([]model.Filter, n)
	for i := range filters {
		filters[i] = model.Filter{
			Type:      model.Peaking,
			Frequency: float64(100 * (i + 1)),
			Q:         1.4,
			Gain:      float64(i) - 3,
		}
	}
	return filters
}

func TestMapToSlots_SlotCountInvariant(t *testing.T) {
	for _, n := range []int{0, 3, 10, 15} {
		bank := MapToSlots(makeFilters(n))
		if len(bank) != model.SlotCount {
			t.Fatalf("n=%d: bank has %d slots, want %d", n, len(bank), model.SlotCount)
		}

		wantEnabled := n
		if wantEnabled > model.SlotCount {
			wantEnabled = model.SlotCount
		}
		enabled := 0
		for _, slot := range bank {
			if slot.Enabled {
				enabled++
			}
		}
		if enabled != wantEnabled {
			t.Errorf("n=%d: %d enabled slots, want %d", n, enabled, wantEnabled)
		}
	}
}

func TestMapToSlots_OrderPreserved(t *testing.T) {
	filters := []model.Filter{
		{Type: model.LowShelf, Frequency: 105, Q: 0.7, Gain: 4},
		{Type: model.Peaking, Frequency: 100, Q: 1.4, Gain: -3},
		{Type: model.HighShelf, Frequency: 8000, Q: 0.7, Gain: -2},
	}

	bank := MapToSlots(filters)

	for i, f := range filters {
		slot := bank[i]
		if !slot.Enabled {
			t.Fatalf("slot %d should be enabled", i)
		}
		if slot.Type != f.Type || slot.Frequency != f.Frequency || slot.Q != f.Q || slot.Gain != f.Gain {
			t.Errorf("slot %d = %+v, does not match filter %+v", i, slot, f)
		}
	}

	for i := len(filters); i < model.SlotCount; i++ {
		if bank[i].Enabled {
			t.Errorf("slot %d should be bypass", i)
		}
		if bank[i].Gain != 0 {
			t.Errorf("bypass slot %d gain = %v, want 0", i, bank[i].Gain)
		}
	}
}

func TestMapToSlots_Truncation(t *testing.T) {
	filters := makeFilters(15)
	bank := MapToSlots(filters)

	// Only the first ten bands survive, in order.
	for i := 0; i < model.SlotCount; i++ {
		if bank[i].Frequency != filters[i].Frequency {
			t.Errorf("slot %d frequency = %v, want %v", i, bank[i].Frequency, filters[i].Frequency)
		}
	}

	// Frequencies of the dropped bands must not appear anywhere.
	for _, slot := range bank {
		for _, dropped := range filters[model.SlotCount:] {
			if slot.Frequency == dropped.Frequency {
				t.Errorf("dropped band frequency %v appears in output", dropped.Frequency)
			}
		}
	}

	if !Truncated(filters) {
		t.Error("Truncated(15 filters) should be true")
	}
	if Truncated(makeFilters(10)) {
		t.Error("Truncated(10 filters) should be false")
	}
}

func TestBuildPreset_MasterGain(t *testing.T) {
	tests := []struct {
		name      string
		preamp    float64
		hasPreamp bool
		suppress  bool
		want      float64
	}{
		{"preamp passed through", 4.5, true, false, 4.5},
		{"suppression wins", 4.5, true, true, 0},
		{"absent preamp", 0, false, false, 0},
		{"negative preamp", -6.2, true, false, -6.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &model.Profile{
				Filters:   makeFilters(2),
				Preamp:    tt.preamp,
				HasPreamp: tt.hasPreamp,
			}
			preset := BuildPreset(profile, Options{SuppressGain: tt.suppress})
			if preset.MasterGain != tt.want {
				t.Errorf("MasterGain = %v, want %v", preset.MasterGain, tt.want)
			}
		})
	}
}

func TestBuildPreset_Defaults(t *testing.T) {
	profile := &model.Profile{Name: "Test Headphone", Filters: makeFilters(1)}

	preset := BuildPreset(profile, Options{})

	if preset.DSPModel != DefaultDSPModel {
		t.Errorf("DSPModel = %q, want %q", preset.DSPModel, DefaultDSPModel)
	}
	if preset.Name != "Test Headphone" {
		t.Errorf("Name = %q", preset.Name)
	}

	preset = BuildPreset(profile, Options{DSPModel: "FIIO BTR17"})
	if preset.DSPModel != "FIIO BTR17" {
		t.Errorf("DSPModel override = %q", preset.DSPModel)
	}
}

func TestBuildPreset_TypeCodes(t *testing.T) {
	profile := &model.Profile{
		Filters: []model.Filter{
			{Type: model.Peaking, Frequency: 100, Q: 1.4, Gain: -3},
			{Type: model.LowShelf, Frequency: 105, Q: 0.7, Gain: 4},
			{Type: model.HighShelf, Frequency: 8000, Q: 0.7, Gain: -2},
		},
	}

	preset := BuildPreset(profile, Options{})

	wantCodes := []int{0, 1, 2}
	for i, want := range wantCodes {
		if got := preset.Slots[i].Type.Code(); got != want {
			t.Errorf("slot %d type code = %d, want %d", i, got, want)
		}
	}
}
