package calculation

import "errors"

// ErrTriangleUnderdetermined is returned when fewer than two of thickness,
// density and surface weight are locked.
var ErrTriangleUnderdetermined = errors.New("at least two of thickness, density and surface weight must be locked")

// Triangle is the thickness [mm] / density [kg/m³] / surface weight [g/m²]
// triple of a sheet material. surfaceWeight = density × thickness.
type Triangle struct {
	Thickness     float64
	Density       float64
	SurfaceWeight float64
	Locked        TriangleLocks
}

func (t Triangle) lockedCount() int {
	n := 0
	for _, l := range []bool{t.Locked.Thickness, t.Locked.Density, t.Locked.SurfaceWeight} {
		if l {
			n++
		}
	}
	return n
}

// ResolveTriangle derives the unlocked field from the two locked ones. With all
// three locked, surface weight is recomputed from thickness and density.
func ResolveTriangle(t Triangle) (Triangle, error) {
	if t.lockedCount() < 2 {
		return t, ErrTriangleUnderdetermined
	}

	switch {
	case t.Locked.Thickness && t.Locked.Density:
		t.SurfaceWeight = t.Density * t.Thickness
	case t.Locked.Thickness && t.Locked.SurfaceWeight:
		t.Density = safeDiv(t.SurfaceWeight, t.Thickness)
	case t.Locked.Density && t.Locked.SurfaceWeight:
		t.Thickness = safeDiv(t.SurfaceWeight, t.Density)
	}
	return t, nil
}

// ArealWeight returns g/m² from an explicit surface weight or from thickness × density.
func ArealWeight(surfaceWeight, thickness, density float64) float64 {
	if surfaceWeight > 0 {
		return surfaceWeight
	}
	return thickness * density
}

// SheetSurface returns the gross area in m² one part consumes when partsPerSheet
// parts are cut from a sheetLength × sheetWidth [mm] sheet.
func SheetSurface(sheetLength, sheetWidth, partsPerSheet float64) float64 {
	if partsPerSheet <= 0 {
		return 0
	}
	return sheetLength * sheetWidth / 1e6 / partsPerSheet
}

// VolumeFromDimensions returns cm³ for a length × width × height box in mm, or 0
// when a dimension is missing.
func VolumeFromDimensions(length, width, height float64) float64 {
	if length <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return length * width * height / 1000
}

// ResolveBruttoWeight returns the brutto weight in grams for the selected option.
// When the option cannot produce a value (empty curve, empty manual field) the
// netto weight is used.
func ResolveBruttoWeight(option WeightOption, netto, manual float64, curve Curve) float64 {
	switch option {
	case WeightBruttoAuto:
		if len(curve) == 0 {
			return netto
		}
		return Interpolate(netto, curve)
	case WeightBruttoManual:
		if manual <= 0 {
			return netto
		}
		return manual
	default:
		return netto
	}
}

// ProcessWeight is the quantity charged for time based processes: the larger of
// netto and brutto.
func ProcessWeight(netto, brutto float64) float64 {
	if brutto > netto {
		return brutto
	}
	return netto
}
