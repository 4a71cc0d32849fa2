package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+27821234567", true},
		{"27821234567", true},
		{"+27 82 123 4567", true},
		{"(082) 123-4567", false}, // leading zero after cleanup
		{"+1 (555) 234-5678", true},
		{"abc", false},
		{"", false},
		{"+", false},
	}

	for _, tc := range tests {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}
