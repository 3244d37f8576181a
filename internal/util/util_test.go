package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero", bytes: 0, expected: "0 B"},
		{name: "under a kilobyte", bytes: 1023, expected: "1023 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "avatar", bytes: 245 * 1024, expected: "245.0 KB"},
		{name: "typical video upload", bytes: 734003200, expected: "700.0 MB"},
		{name: "large master file", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatRuntime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "unknown", seconds: 0, expected: "0:00"},
		{name: "negative", seconds: -3, expected: "0:00"},
		{name: "not a number", seconds: math.NaN(), expected: "0:00"},
		{name: "short clip", seconds: 7.4, expected: "0:07"},
		{name: "rounds up", seconds: 59.6, expected: "1:00"},
		{name: "minutes", seconds: 245, expected: "4:05"},
		{name: "over an hour", seconds: 3723, expected: "1:02:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatRuntime(tt.seconds))
		})
	}
}
