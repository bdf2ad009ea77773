package utils

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{
			name:  "round to 2 decimals",
			input: 383.333333,
			want:  383.33,
		},
		{
			name:  "already 2 decimals",
			input: 1150.5,
			want:  1150.5,
		},
		{
			name:  "integer",
			input: 1000.0,
			want:  1000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{"finite number", 123.45, true},
		{"infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"NaN", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.input); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1000", "1000"},
		{" 1000.50 ", "1000.50"},
		{"1.000,50", "1000.50"},
		{"R$ 2.500,00", "2500.00"},
		{"R$\u00a02.500,00", "2500.00"},
		{"12,5%", "12.5"},
		{"10%", "10"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeDecimal(tt.input); got != tt.want {
				t.Errorf("NormalizeDecimal(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
