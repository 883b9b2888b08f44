// ABOUTME: Weight unit conversion and formatting helpers.
// ABOUTME: Pure functions shared by the history read path and the CLI.
package settings

import "fmt"

// lbsPerKg is the fixed kilogram to pound conversion factor.
const lbsPerKg = 2.20462

// ConvertWeight converts a weight between unit systems. Identity when the
// source and target systems match.
func ConvertWeight(value float64, fromMetric, toMetric bool) float64 {
	if fromMetric == toMetric {
		return value
	}
	if fromMetric {
		return value * lbsPerKg
	}
	return value / lbsPerKg
}

// FormatWeight renders a weight with its unit label.
func FormatWeight(value float64, useMetric bool) string {
	if useMetric {
		return fmt.Sprintf("%g kg", value)
	}
	return fmt.Sprintf("%g lbs", value)
}

// UnitLabel returns the unit label for a unit system.
func UnitLabel(useMetric bool) string {
	if useMetric {
		return "kg"
	}
	return "lbs"
}
