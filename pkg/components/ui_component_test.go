package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
		str   string
	}{
		{"UINormal should be 0", UINormal, 0, "normal"},
		{"UIHovered should be 1", UIHovered, 1, "hovered"},
		{"UIClicked should be 2", UIClicked, 2, "clicked"},
		{"UIDisabled should be 3", UIDisabled, 3, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.state.String(), tt.str)
			}
		})
	}

	if UIState(99).String() != "unknown" {
		t.Errorf("Unexpected string for invalid state: %q", UIState(99).String())
	}
}
