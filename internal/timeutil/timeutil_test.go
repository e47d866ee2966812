package timeutil

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "00:00:00.00"},
		{"seconds only", 45, "00:00:45.00"},
		{"minutes", 90, "00:01:30.00"},
		{"hours", 3661, "01:01:01.00"},
		{"fractional", 30.53, "00:00:30.53"},
		{"fractional under a second", 0.25, "00:00:00.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.seconds)
			if got != tt.expected {
				t.Errorf("FormatSeconds(%v) = %q; want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"seconds only", 4 * time.Second, "4s"},
		{"sub-second rounds", 1500 * time.Millisecond, "2s"},
		{"minutes", 72 * time.Second, "1m 12s"},
		{"hours keep inner zeros", 2*time.Hour + 5*time.Second, "2h 0m 5s"},
		{"zero", 0, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatElapsed(tt.d)
			if got != tt.expected {
				t.Errorf("FormatElapsed(%v) = %q; want %q", tt.d, got, tt.expected)
			}
		})
	}
}
