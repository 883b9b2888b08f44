// ABOUTME: Tests for weight unit conversion and formatting.
// ABOUTME: Checks the kg/lbs factor, identity conversions, and labels.

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertWeight(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		fromMetric bool
		toMetric   bool
		want       float64
	}{
		{name: "kg to lbs", value: 100, fromMetric: true, toMetric: false, want: 220.462},
		{name: "lbs to kg", value: 100, fromMetric: false, toMetric: true, want: 45.359},
		{name: "kg to kg identity", value: 100, fromMetric: true, toMetric: true, want: 100},
		{name: "lbs to lbs identity", value: 100, fromMetric: false, toMetric: false, want: 100},
		{name: "zero", value: 0, fromMetric: true, toMetric: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertWeight(tt.value, tt.fromMetric, tt.toMetric)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestConvertWeightRoundTrip(t *testing.T) {
	lbs := ConvertWeight(82.5, true, false)
	back := ConvertWeight(lbs, false, true)
	assert.InDelta(t, 82.5, back, 1e-9)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "100 kg", FormatWeight(100, true))
	assert.Equal(t, "220.462 lbs", FormatWeight(220.462, false))
	assert.Equal(t, "82.5 kg", FormatWeight(82.5, true))
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "kg", UnitLabel(true))
	assert.Equal(t, "lbs", UnitLabel(false))
}
