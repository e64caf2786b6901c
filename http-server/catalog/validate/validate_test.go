package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quote-calc/internal/service/calculation"
)

func TestMaterial(t *testing.T) {
	m := calculation.Material{Name: "  Steel DC01 ", PricePerKg: 1.1, Density: 7850}
	assert.Empty(t, Material(&m))
	assert.Equal(t, "Steel DC01", m.Name)

	assert.NotEmpty(t, Material(&calculation.Material{}))
	assert.NotEmpty(t, Material(&calculation.Material{Name: "x", PricePerM2: -1}))
	assert.NotEmpty(t, Material(&calculation.Material{Name: "x", Thickness: -0.5}))
}

func TestPackagingComposition(t *testing.T) {
	c := calculation.PackagingComposition{Name: "EUR", PackagesPerPallet: 40, PalletsPerSpace: 2, CompositionCost: 90}
	assert.Empty(t, PackagingComposition(&c))

	assert.NotEmpty(t, PackagingComposition(&calculation.PackagingComposition{Name: " "}))
	assert.NotEmpty(t, PackagingComposition(&calculation.PackagingComposition{ID: "custom", Name: "x"}))
	assert.NotEmpty(t, PackagingComposition(&calculation.PackagingComposition{Name: "x", CompositionCost: -5}))
}
