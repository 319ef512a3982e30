package services

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Crème Brûlée", "creme brulee"},
		{"  Multiple   spaces\tand tabs ", "multiple spaces and tabs"},
		{"JALAPEÑO", "jalapeno"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := normalizeText(tt.input); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
