package verdict

import (
	"math"
	"testing"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []float64
	}{
		{"single integer", "Result: 42", []float64{42}},
		{"decimal", "pi is 3.14159", []float64{3.14159}},
		{"negative", "temp: -12.5 degrees", []float64{-12.5}},
		{"explicit plus", "+7 points", []float64{7}},
		{"multiple", "3 then 7 then 42", []float64{3, 7, 42}},
		{"long token stays whole", "code 1420", []float64{1420}},
		{"subtraction not negative", "10-3", []float64{10, 3}},
		{"none", "no numbers", []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractNumbers(tt.output)
			if len(got) != len(tt.want) {
				t.Fatalf("extractNumbers(%q) = %v, want %v", tt.output, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("extractNumbers(%q) = %v, want %v", tt.output, got, tt.want)
				}
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		got, want float64
		ok        bool
	}{
		{3, 3, true},
		{2.9999999, 3, true},
		{3.0000001, 3, true},
		{2.998, 3, true}, // within 0.1% relative
		{2.9, 3, false},
		{0, 0, true},
		{1e-9, 0, true}, // absolute tolerance handles expected zero
		{-7.5, -7.5, true},
		{7.5, -7.5, false},
	}
	for _, tt := range tests {
		if got := withinTolerance(tt.got, tt.want, cfg); got != tt.ok {
			t.Errorf("withinTolerance(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestWithinTolerance_RelativeScalesWithMagnitude(t *testing.T) {
	cfg := DefaultConfig()

	// 0.05% off a large value passes relatively, though far beyond the
	// absolute epsilon.
	if !withinTolerance(1000000.5, 1000000, cfg) {
		t.Fatal("relative tolerance should absorb drift on large values")
	}
	if math.Abs(1000000.5-1000000) <= cfg.AbsTolerance {
		t.Fatal("test premise broken: drift should exceed the absolute epsilon")
	}
}
