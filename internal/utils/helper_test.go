package utils_test

import (
	"testing"

	"github.com/maryanafarm/storefront/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Whole Amount Has No Decimals", 100, "100"},
		{"Zero", 0, "0"},
		{"Rounds To Kopiykas", 10.506, "10.51"},
		{"Trailing Zeros Dropped", 12.50, "12.5"},
		{"Float Noise Rounded Away", 0.1 + 0.2, "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.FormatAmount(tt.amount))
		})
	}
}
