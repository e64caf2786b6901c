package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerPricing(t *testing.T) {
	p := LayerPricing([]float64{60, 40}, 20, 10)

	assert.InDelta(t, 100.0, p.TotalCost, 1e-9)
	assert.InDelta(t, 120.0, p.TotalWithMargin, 1e-9)
	assert.InDelta(t, 132.0, p.TotalWithSGA, 1e-9)
}

func TestLayerPricing_IgnoresNegativeComponents(t *testing.T) {
	p := LayerPricing([]float64{10, -4, 0, 5}, 0, 0)

	assert.InDelta(t, 15.0, p.TotalCost, 1e-9)
	assert.InDelta(t, 15.0, p.TotalWithSGA, 1e-9)
}

func TestShiftCost(t *testing.T) {
	// one hour at 80 €/8h
	assert.InDelta(t, 10.0, shiftCost(3600, 80), 1e-12)
}
