package calculation

// Results is the cost breakdown of one item. Weights are in grams, times in
// seconds, surfaces in m² and costs in € per part.
type Results struct {
	Mode Mode `json:"calculationType"`

	MaterialCost        float64 `json:"materialCost"`
	BakingCost          float64 `json:"bakingCost"`
	CleaningCost        float64 `json:"cleaningCost"`
	HandlingCost        float64 `json:"handlingCost"`
	CustomProcessesCost float64 `json:"customProcessesCost"`
	CustomCurvesCost    float64 `json:"customCurvesCost"`
	PackagingCost       float64 `json:"packagingCost"`

	TotalCost       float64 `json:"totalCost"`
	TotalWithMargin float64 `json:"totalWithMargin"`
	TotalWithSGA    float64 `json:"totalWithSGA"`
	Margin          float64 `json:"margin"`
	SGA             float64 `json:"sga"`

	NettoWeight   float64 `json:"nettoWeight"`
	BruttoWeight  float64 `json:"bruttoWeight"`
	ProcessWeight float64 `json:"processWeight"`
	BakingTime    float64 `json:"bakingTime"`
	CleaningTime  float64 `json:"cleaningTime"`

	CustomProcesses map[string]float64   `json:"customProcesses,omitempty"`
	CustomCurves    map[string]CurveCost `json:"customCurves,omitempty"`

	SurfaceNetto  float64 `json:"surfaceNetto,omitempty"`
	SurfaceBrutto float64 `json:"surfaceBrutto,omitempty"`
	Thickness     float64 `json:"thickness,omitempty"`
	Density       float64 `json:"density,omitempty"`
	SurfaceWeight float64 `json:"surfaceWeight,omitempty"`

	Volume float64 `json:"volume,omitempty"`

	Heatshield *HeatshieldResults `json:"heatshield,omitempty"`
	Layers     []LayerResult      `json:"layers,omitempty"`
}

type HeatshieldResults struct {
	SurfaceBruttoSheet float64 `json:"surfaceBruttoSheet"`
	SheetMaterialCost  float64 `json:"sheetMaterialCost"`
	MatMaterialCost    float64 `json:"matMaterialCost"`
	PrepTime           float64 `json:"prepTime"`
	PrepCost           float64 `json:"prepCost"`
	LaserCost          float64 `json:"laserCost"`
	BendingCost        float64 `json:"bendingCost"`
	JoiningCost        float64 `json:"joiningCost"`
	GluingCost         float64 `json:"gluingCost"`
}

type LayerResult struct {
	Name          string  `json:"name,omitempty"`
	SurfaceWeight float64 `json:"surfaceWeight"`
	SurfaceNetto  float64 `json:"surfaceNetto"`
	SurfaceBrutto float64 `json:"surfaceBrutto"`
	WeightNetto   float64 `json:"weightNetto"`
	WeightBrutto  float64 `json:"weightBrutto"`
	MaterialCost  float64 `json:"materialCost"`
}

// components lists every cost that enters the total cost.
func (r *Results) components() []float64 {
	c := []float64{
		r.MaterialCost,
		r.BakingCost,
		r.CleaningCost,
		r.HandlingCost,
		r.CustomProcessesCost,
		r.CustomCurvesCost,
		r.PackagingCost,
	}
	if h := r.Heatshield; h != nil {
		c = append(c, h.PrepCost, h.LaserCost, h.BendingCost, h.JoiningCost, h.GluingCost)
	}
	return c
}

// Revenue is annualVolume × totalWithSGA.
func (r *Results) Revenue(annualVolume float64) float64 {
	if r == nil {
		return 0
	}
	return annualVolume * r.TotalWithSGA
}

// Profit is annualVolume × (totalCost × margin/100).
func (r *Results) Profit(annualVolume, margin float64) float64 {
	if r == nil {
		return 0
	}
	return annualVolume * (r.TotalCost * margin / 100)
}
