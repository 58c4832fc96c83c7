package location

import "testing"

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{"known state", "odisha", "Odisha"},
		{"mixed case", "Tamil Nadu", "Tamil Nadu"},
		{"leading whitespace", "  punjab ", "Punjab"},
		{"known city", "Mumbai", "Mumbai"},
		{"unknown region", "atlantis", "India (Central)"},
		{"empty", "", "India (Central)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.input)
			if got.DisplayName != tt.wantName {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got.DisplayName, tt.wantName)
			}
			if got.Lat == 0 || got.Lon == 0 {
				t.Errorf("Resolve(%q) returned zero coordinates", tt.input)
			}
		})
	}
}

func TestRegistry_ResolveNeverFails(t *testing.T) {
	r := NewRegistry()
	def := r.Resolve("")

	for _, input := range []string{"", "  ", "no-such-place", "123", "ODISHA!"} {
		got := r.Resolve(input)
		if got.DisplayName == "" {
			t.Errorf("Resolve(%q) returned empty display name", input)
		}
		if !r.Known(input) && got != def {
			t.Errorf("Resolve(%q) = %+v, want default entry %+v", input, got, def)
		}
	}
}

func TestRegistry_All(t *testing.T) {
	r := NewRegistry()
	all := r.All()

	if len(all) != 30 {
		t.Fatalf("expected 30 registry entries, got %d", len(all))
	}
	for _, c := range all {
		if c.DisplayName == "India (Central)" {
			t.Error("All() should not include the default entry")
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].DisplayName > all[i].DisplayName {
			t.Fatalf("entries not sorted: %q before %q", all[i-1].DisplayName, all[i].DisplayName)
		}
	}
}
