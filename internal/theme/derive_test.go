package theme

import "testing"

func TestShadeSoft(t *testing.T) {
	tests := []struct {
		strength float64
		want     string
	}{
		{0, "0.00"},
		{0.18, "0.06"},
		{0.9, "0.30"},
		{1.2, "0.35"},
		{5, "0.35"},
		{-1, "0.00"},
	}
	for _, tt := range tests {
		if got := ShadeSoft(tt.strength); got != tt.want {
			t.Errorf("ShadeSoft(%v) = %q, want %q", tt.strength, got, tt.want)
		}
	}
}

func TestShadeSoftCeiling(t *testing.T) {
	// 0.9/3 = 0.30 is under the ceiling; 1.05/3 = 0.35 is exactly at it;
	// anything above clamps.
	if got := ShadeSoft(2); got != "0.35" {
		t.Errorf("ShadeSoft(2) = %q, want 0.35", got)
	}
}

func TestShadePanel(t *testing.T) {
	tests := []struct {
		strength float64
		want     string
	}{
		{0, "0.00"},
		{0.18, "0.11"},
		{0.5, "0.30"},
		{0.9, "0.45"},
		{3, "0.45"},
	}
	for _, tt := range tests {
		if got := ShadePanel(tt.strength); got != tt.want {
			t.Errorf("ShadePanel(%v) = %q, want %q", tt.strength, got, tt.want)
		}
	}
}

func TestShadowValue(t *testing.T) {
	if got := ShadowValue(0.45); got != "0 20px 45px rgba(6, 9, 19, 0.45)" {
		t.Errorf("ShadowValue = %q", got)
	}
	if got := ShadowValue(0.7); got != "0 20px 45px rgba(6, 9, 19, 0.70)" {
		t.Errorf("ShadowValue = %q", got)
	}
}

func TestExtractAlpha(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"rgba(6, 9, 19, 0.45)", 0.45, true},
		{"0 20px 45px rgba(6, 9, 19, 0.7)", 0.7, true},
		{"rgba(1, 2, 3, 2.5)", 1, true},
		{"rgb(1, 2, 3)", 0, false},
		{"#336699", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ExtractAlpha(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExtractAlpha(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
