package calculation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Mode selects the cost formula of a tab.
type Mode string

const (
	ModeWeight     Mode = "weight"
	ModeSurface    Mode = "surface"
	ModeVolume     Mode = "volume"
	ModeHeatshield Mode = "heatshield"
	ModeMultilayer Mode = "multilayer"
)

// Modes lists every calculation mode.
var Modes = []Mode{ModeWeight, ModeSurface, ModeVolume, ModeHeatshield, ModeMultilayer}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeWeight, ModeSurface, ModeVolume, ModeHeatshield, ModeMultilayer:
		return true
	}
	return false
}

// Normalize maps unknown or empty modes to weight mode.
func (m Mode) Normalize() Mode {
	if m.Valid() {
		return m
	}
	return ModeWeight
}

type WeightOption string

const (
	WeightNetto        WeightOption = "netto"
	WeightBruttoAuto   WeightOption = "brutto-auto"
	WeightBruttoManual WeightOption = "brutto-manual"
)

// PriceUnit is the unit a material price refers to.
type PriceUnit string

const (
	PerKilogram    PriceUnit = "kg"
	PerSquareMeter PriceUnit = "m2"
)

type Tab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode Mode   `json:"calculationType"`

	MaterialID        string    `json:"materialId,omitempty"`
	MaterialPrice     Number    `json:"materialPrice"`
	MaterialPriceUnit PriceUnit `json:"materialPriceUnit,omitempty"`

	// Process rates: baking, cleaning and heatshield prep in €/8h, handling in €/piece.
	BakingCost   Number `json:"bakingCost"`
	CleaningCost Number `json:"cleaningCost"`
	HandlingCost Number `json:"handlingCost"`
	PrepCost     Number `json:"prepCost"`

	// SGA overrides the global SG&A percentage when set.
	SGA *Number `json:"sga,omitempty"`

	Curves          TabCurves       `json:"curves"`
	CustomProcesses []CustomProcess `json:"customProcesses"`
	CustomCurves    []CustomCurve   `json:"customCurves"`

	Items []Item `json:"items"`
}

type TabCurves struct {
	Baking          Curve `json:"baking"`
	Cleaning        Curve `json:"cleaning"`
	BruttoWeight    Curve `json:"bruttoWeight"`
	HeatshieldPrep  Curve `json:"heatshieldPrep"`
	HeatshieldLaser Curve `json:"heatshieldLaser"`
}

// EffectiveSGA returns the tab SG&A percentage, or fallback when the tab has none.
func (t Tab) EffectiveSGA(fallback float64) float64 {
	if t.SGA != nil {
		return t.SGA.Float()
	}
	return fallback
}

// UnmarshalJSON reads the tab, treating a null or blank "sga" as unset so a
// cleared field falls back to the global percentage.
func (t *Tab) UnmarshalJSON(data []byte) error {
	type tab Tab
	aux := struct {
		*tab
		SGA json.RawMessage `json:"sga"`
	}{tab: (*tab)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	t.SGA = nil
	raw := bytes.TrimSpace(aux.SGA)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) == "" {
			return nil
		}
	}

	var n Number
	if err := n.UnmarshalJSON(raw); err != nil {
		return err
	}
	t.SGA = &n
	return nil
}

type Item struct {
	ID     string `json:"id,omitempty"`
	PartID string `json:"partId"`
	Name   string `json:"name,omitempty"`

	// Weight is the netto weight in grams (weight mode).
	Weight       Number       `json:"weight"`
	WeightOption WeightOption `json:"weightOption,omitempty"`
	// BruttoWeight is the manual brutto weight in grams, read for brutto-manual.
	BruttoWeight Number `json:"bruttoWeight"`

	Margin       Number `json:"margin"`
	AnnualVolume Number `json:"annualVolume"`

	Surface    *SurfaceInput    `json:"surface,omitempty"`
	Volume     *VolumeInput     `json:"volume,omitempty"`
	Heatshield *HeatshieldInput `json:"heatshield,omitempty"`
	Multilayer *MultilayerInput `json:"multilayer,omitempty"`

	CustomValues      map[string]Number           `json:"customValues,omitempty"`
	CustomCurveValues map[string]CustomCurveValue `json:"customCurveValues,omitempty"`

	Packaging *Packaging `json:"packaging,omitempty"`

	// Results is a cache of the last computation, never an input.
	Results *Results `json:"results"`
}

type TriangleLocks struct {
	Thickness     bool `json:"thickness"`
	Density       bool `json:"density"`
	SurfaceWeight bool `json:"surfaceWeight"`
}

type SurfaceInput struct {
	Thickness     Number        `json:"thickness"`     // mm
	Density       Number        `json:"density"`       // kg/m³
	SurfaceWeight Number        `json:"surfaceWeight"` // g/m²
	Locked        TriangleLocks `json:"locked"`

	SurfaceNetto  Number `json:"surfaceNetto"` // m²
	SheetLength   Number `json:"sheetLength"`  // mm
	SheetWidth    Number `json:"sheetWidth"`   // mm
	PartsPerSheet Number `json:"partsPerSheet"`
}

type VolumeInput struct {
	MaterialID string `json:"materialId,omitempty"`
	Length     Number `json:"length"`  // mm
	Width      Number `json:"width"`   // mm
	Height     Number `json:"height"`  // mm
	Volume     Number `json:"volume"`  // cm³, used when dimensions are incomplete
	Density    Number `json:"density"` // g/cm³
}

type HeatshieldInput struct {
	SurfaceNetto  Number `json:"surfaceNetto"` // m²
	SheetLength   Number `json:"sheetLength"`  // mm
	SheetWidth    Number `json:"sheetWidth"`   // mm
	PartsPerSheet Number `json:"partsPerSheet"`

	Sheet SheetMaterial `json:"sheet"`
	Mat   SheetMaterial `json:"mat"`

	BendingCost Number `json:"bendingCost"`
	JoiningCost Number `json:"joiningCost"`
	GluingCost  Number `json:"gluingCost"`
}

// SheetMaterial is one material of a heatshield assembly. Its areal weight is
// SurfaceWeight, or Thickness × Density when SurfaceWeight is empty.
type SheetMaterial struct {
	MaterialID    string    `json:"materialId,omitempty"`
	Thickness     Number    `json:"thickness"`     // mm
	Density       Number    `json:"density"`       // kg/m³
	SurfaceWeight Number    `json:"surfaceWeight"` // g/m²
	Surface       Number    `json:"surface"`       // m² consumed per part, optional
	Price         Number    `json:"price"`
	PriceUnit     PriceUnit `json:"priceUnit,omitempty"`
}

type MultilayerInput struct {
	SurfaceNetto  Number  `json:"surfaceNetto"`  // m²
	SurfaceBrutto Number  `json:"surfaceBrutto"` // m²
	Layers        []Layer `json:"layers"`
}

type Layer struct {
	Name          string    `json:"name,omitempty"`
	MaterialID    string    `json:"materialId,omitempty"`
	Thickness     Number    `json:"thickness"`
	Density       Number    `json:"density"`
	SurfaceWeight Number    `json:"surfaceWeight"`
	SurfaceNetto  Number    `json:"surfaceNetto"`
	SurfaceBrutto Number    `json:"surfaceBrutto"`
	Price         Number    `json:"price"`
	PriceUnit     PriceUnit `json:"priceUnit,omitempty"`
}

type CustomCurveValue struct {
	Input Number `json:"input"`
}

// Material is a material catalog entry.
type Material struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerKg    float64 `json:"pricePerKg"`
	PricePerM2    float64 `json:"pricePerM2"`
	Density       float64 `json:"density"`       // kg/m³
	SurfaceWeight float64 `json:"surfaceWeight"` // g/m²
	Thickness     float64 `json:"thickness"`     // mm
}

// Catalog holds the catalog entries items may reference.
type Catalog struct {
	Packaging []PackagingComposition
	Materials []Material
}

func (c Catalog) material(id string) (Material, bool) {
	if id == "" {
		return Material{}, false
	}
	for _, m := range c.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}
