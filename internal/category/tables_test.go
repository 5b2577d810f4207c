package category

import "testing"

func TestCountryCode(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"Brazil", "BR", true},
		{"brazil", "BR", true},
		{"England", "GB-ENG", true},
		{"Narnia", "", false},
	}
	for _, tt := range tests {
		got, ok := CountryCode(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CountryCode(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTrophyStatKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"Champions League", "champions_league_titles", true},
		{"Ballon d'Or", "ballon_dor", true},
		{"BALLON D'OR", "ballon_dor", true},
		{"Intergalactic Cup", "", false},
	}
	for _, tt := range tests {
		got, ok := TrophyStatKey(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("TrophyStatKey(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseStatExpression(t *testing.T) {
	tests := []struct {
		label     string
		threshold int
		key       string
		ok        bool
	}{
		{"100+ Goals", 100, "goals", true},
		{"5+ Ballon d'Ors", 5, "ballon_dor", true},
		{"50+ caps", 50, "caps", true},
		{"1+ Golden Boot", 1, "golden_boots", true},
		{"100 Goals", 0, "", false},     // missing '+'
		{"many+ Goals", 0, "", false},   // non-numeric threshold
		{"10+ Mystery Stat", 0, "", false},
		{"", 0, "", false},
	}
	for _, tt := range tests {
		threshold, key, ok := ParseStatExpression(tt.label)
		if ok != tt.ok || threshold != tt.threshold || key != tt.key {
			t.Errorf("ParseStatExpression(%q) = (%d, %q, %v); want (%d, %q, %v)",
				tt.label, threshold, key, ok, tt.threshold, tt.key, tt.ok)
		}
	}
}
