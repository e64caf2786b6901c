package calculation

// Revenue is annualVolume × totalWithSGA of the cached results.
func (it Item) Revenue() float64 {
	return it.Results.Revenue(it.AnnualVolume.Float())
}

// Profit is annualVolume × (totalCost × margin/100) of the cached results.
func (it Item) Profit() float64 {
	return it.Results.Profit(it.AnnualVolume.Float(), it.Margin.Float())
}

// HasModeData reports whether the item carries input of a calculation mode, which
// a mode switch would discard.
func (it Item) HasModeData() bool {
	return it.Weight.Float() != 0 ||
		it.BruttoWeight.Float() != 0 ||
		it.Surface != nil ||
		it.Volume != nil ||
		it.Heatshield != nil ||
		(it.Multilayer != nil && len(it.Multilayer.Layers) > 0) ||
		it.Results != nil
}

// ResetForMode clears mode specific input and cached results and prepares an
// empty input for mode. Identity, margin, volume and packaging are kept.
func (it *Item) ResetForMode(mode Mode) {
	it.Weight = 0
	it.BruttoWeight = 0
	it.WeightOption = WeightNetto
	it.Surface = nil
	it.Volume = nil
	it.Heatshield = nil
	it.Multilayer = nil
	it.CustomValues = nil
	it.CustomCurveValues = nil
	it.Results = nil

	switch mode.Normalize() {
	case ModeSurface:
		// thickness and density are the usual pair known up front
		it.Surface = &SurfaceInput{Locked: TriangleLocks{Thickness: true, Density: true}}
	case ModeVolume:
		it.Volume = &VolumeInput{}
	case ModeHeatshield:
		it.Heatshield = &HeatshieldInput{
			Sheet: SheetMaterial{PriceUnit: PerKilogram},
			Mat:   SheetMaterial{PriceUnit: PerSquareMeter},
		}
	case ModeMultilayer:
		it.Multilayer = &MultilayerInput{Layers: []Layer{}}
	}
}

// HasModeData reports whether any item of the tab holds mode specific input.
func (t Tab) HasModeData() bool {
	for _, it := range t.Items {
		if it.HasModeData() {
			return true
		}
	}
	return false
}

// SwitchMode changes the tab mode. When an item holds data of the current mode
// the switch needs confirm, and then every item is reset. It reports whether
// the mode was changed.
func (t *Tab) SwitchMode(mode Mode, confirm bool) bool {
	mode = mode.Normalize()
	if t.Mode.Normalize() == mode {
		t.Mode = mode
		return true
	}

	if t.HasModeData() && !confirm {
		return false
	}

	t.Mode = mode
	for i := range t.Items {
		t.Items[i].ResetForMode(mode)
	}
	return true
}
