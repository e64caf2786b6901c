// Package validate checks catalog entries submitted by the admin panel.
package validate

import (
	"strings"

	"quote-calc/internal/service/calculation"
)

// Material trims the name and returns a message for the first invalid field,
// or "" when m is valid.
func Material(m *calculation.Material) string {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return "Missing required field 'name'"
	}
	if m.PricePerKg < 0 || m.PricePerM2 < 0 {
		return "Prices must not be negative"
	}
	if m.Density < 0 || m.SurfaceWeight < 0 || m.Thickness < 0 {
		return "Density, surface weight and thickness must not be negative"
	}
	return ""
}

func PackagingComposition(c *calculation.PackagingComposition) string {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return "Missing required field 'name'"
	}
	if c.ID == calculation.CustomComposition {
		return "'custom' is reserved for manual packaging"
	}
	if c.PackagesPerPallet < 0 || c.PalletsPerSpace < 0 || c.CompositionCost < 0 {
		return "Composition values must not be negative"
	}
	return ""
}
