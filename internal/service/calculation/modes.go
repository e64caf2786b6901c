package calculation

import "math"

type costInput struct {
	tab     *Tab
	item    *Item
	catalog Catalog
}

// modeCalculator resolves the physical quantities of an item and prices its
// material. A nil Results means the item is not computable yet.
type modeCalculator func(in costInput) (*Results, error)

func calculatorFor(mode Mode) modeCalculator {
	switch mode.Normalize() {
	case ModeSurface:
		return calculateSurface
	case ModeVolume:
		return calculateVolume
	case ModeHeatshield:
		return calculateHeatshield
	case ModeMultilayer:
		return calculateMultilayer
	default:
		return calculateWeight
	}
}

func calculateWeight(in costInput) (*Results, error) {
	netto := in.item.Weight.Float()
	if netto <= 0 {
		return nil, nil
	}

	brutto := ResolveBruttoWeight(in.item.WeightOption, netto, in.item.BruttoWeight.Float(), in.tab.Curves.BruttoWeight)

	return &Results{
		Mode:          ModeWeight,
		NettoWeight:   netto,
		BruttoWeight:  brutto,
		ProcessWeight: ProcessWeight(netto, brutto),
		MaterialCost:  brutto / 1000 * in.catalog.materialPrice(in.tab, PerKilogram),
	}, nil
}

func calculateSurface(in costInput) (*Results, error) {
	s := in.item.Surface
	if s == nil || s.SurfaceNetto.Float() <= 0 {
		return nil, nil
	}

	tri, err := ResolveTriangle(Triangle{
		Thickness:     s.Thickness.Float(),
		Density:       s.Density.Float(),
		SurfaceWeight: s.SurfaceWeight.Float(),
		Locked:        s.Locked,
	})
	if err != nil {
		return nil, err
	}

	surfaceNetto := s.SurfaceNetto.Float()
	surfaceBrutto := SheetSurface(s.SheetLength.Float(), s.SheetWidth.Float(), s.PartsPerSheet.Float())
	if surfaceBrutto <= 0 {
		surfaceBrutto = surfaceNetto
	}

	gsm := ArealWeight(tri.SurfaceWeight, tri.Thickness, tri.Density)
	netto := surfaceNetto * gsm
	brutto := surfaceBrutto * gsm

	r := &Results{
		Mode:          ModeSurface,
		NettoWeight:   netto,
		BruttoWeight:  brutto,
		ProcessWeight: ProcessWeight(netto, brutto),
		SurfaceNetto:  surfaceNetto,
		SurfaceBrutto: surfaceBrutto,
		Thickness:     tri.Thickness,
		Density:       tri.Density,
		SurfaceWeight: gsm,
	}

	unit := in.tab.MaterialPriceUnit
	price := in.catalog.materialPrice(in.tab, unit)
	if unit == PerSquareMeter {
		r.MaterialCost = math.Max(surfaceBrutto, surfaceNetto) * price
	} else {
		r.MaterialCost = brutto / 1000 * price
	}
	return r, nil
}

func calculateVolume(in costInput) (*Results, error) {
	v := in.item.Volume
	if v == nil {
		return nil, nil
	}

	volume := VolumeFromDimensions(v.Length.Float(), v.Width.Float(), v.Height.Float())
	if volume == 0 {
		volume = v.Volume.Float()
	}

	netto := volume * in.catalog.volumeDensity(v)
	if netto <= 0 {
		return nil, nil
	}

	brutto := ResolveBruttoWeight(in.item.WeightOption, netto, in.item.BruttoWeight.Float(), in.tab.Curves.BruttoWeight)

	return &Results{
		Mode:          ModeVolume,
		NettoWeight:   netto,
		BruttoWeight:  brutto,
		ProcessWeight: ProcessWeight(netto, brutto),
		Volume:        volume,
		MaterialCost:  brutto / 1000 * in.catalog.materialPrice(in.tab, PerKilogram),
	}, nil
}

func calculateHeatshield(in costInput) (*Results, error) {
	h := in.item.Heatshield
	if h == nil || h.SurfaceNetto.Float() <= 0 {
		return nil, nil
	}

	surfaceNetto := h.SurfaceNetto.Float()
	sheetSurface := SheetSurface(h.SheetLength.Float(), h.SheetWidth.Float(), h.PartsPerSheet.Float())
	if sheetSurface <= 0 {
		sheetSurface = surfaceNetto
	}

	sheet := in.catalog.fillSheet(h.Sheet)
	mat := in.catalog.fillSheet(h.Mat)

	sheetGsm := ArealWeight(sheet.SurfaceWeight.Float(), sheet.Thickness.Float(), sheet.Density.Float())
	matGsm := ArealWeight(mat.SurfaceWeight.Float(), mat.Thickness.Float(), mat.Density.Float())

	sheetArea := firstPositive(sheet.Surface.Float(), sheetSurface)
	matArea := firstPositive(mat.Surface.Float(), surfaceNetto)

	sheetBrutto := sheetGsm * sheetArea
	matBrutto := matGsm * matArea
	netto := (sheetGsm + matGsm) * surfaceNetto
	brutto := sheetBrutto + matBrutto

	processArea := math.Max(surfaceNetto, sheetSurface)
	prepTime := Interpolate(processArea, in.tab.Curves.HeatshieldPrep)

	hr := &HeatshieldResults{
		SurfaceBruttoSheet: sheetSurface,
		SheetMaterialCost:  sheetMaterialCost(sheet, sheetBrutto, math.Max(sheetArea, surfaceNetto)),
		MatMaterialCost:    sheetMaterialCost(mat, matBrutto, math.Max(matArea, surfaceNetto)),
		PrepTime:           prepTime,
		PrepCost:           shiftCost(prepTime, in.tab.PrepCost.Float()),
		LaserCost:          Interpolate(processArea, in.tab.Curves.HeatshieldLaser),
		BendingCost:        h.BendingCost.Float(),
		JoiningCost:        h.JoiningCost.Float(),
		GluingCost:         h.GluingCost.Float(),
	}

	return &Results{
		Mode:          ModeHeatshield,
		NettoWeight:   netto,
		BruttoWeight:  brutto,
		ProcessWeight: ProcessWeight(netto, brutto),
		SurfaceNetto:  surfaceNetto,
		SurfaceBrutto: sheetSurface,
		MaterialCost:  hr.SheetMaterialCost + hr.MatMaterialCost,
		Heatshield:    hr,
	}, nil
}

func sheetMaterialCost(m SheetMaterial, bruttoWeight, area float64) float64 {
	if m.PriceUnit == PerSquareMeter {
		return area * m.Price.Float()
	}
	return bruttoWeight / 1000 * m.Price.Float()
}

func calculateMultilayer(in costInput) (*Results, error) {
	m := in.item.Multilayer
	if m == nil || len(m.Layers) == 0 {
		return nil, nil
	}

	sharedNetto := m.SurfaceNetto.Float()
	sharedBrutto := firstPositive(m.SurfaceBrutto.Float(), sharedNetto)

	r := &Results{
		Mode:          ModeMultilayer,
		SurfaceNetto:  sharedNetto,
		SurfaceBrutto: sharedBrutto,
		Layers:        make([]LayerResult, 0, len(m.Layers)),
	}

	for _, l := range m.Layers {
		l = in.catalog.fillLayer(l)

		areaNetto := firstPositive(l.SurfaceNetto.Float(), sharedNetto)
		areaBrutto := firstPositive(l.SurfaceBrutto.Float(), sharedBrutto, areaNetto)
		gsm := ArealWeight(l.SurfaceWeight.Float(), l.Thickness.Float(), l.Density.Float())

		lr := LayerResult{
			Name:          l.Name,
			SurfaceWeight: gsm,
			SurfaceNetto:  areaNetto,
			SurfaceBrutto: areaBrutto,
			WeightNetto:   areaNetto * gsm,
			WeightBrutto:  areaBrutto * gsm,
		}
		if l.PriceUnit == PerSquareMeter {
			lr.MaterialCost = areaBrutto * l.Price.Float()
		} else {
			lr.MaterialCost = lr.WeightBrutto / 1000 * l.Price.Float()
		}

		r.NettoWeight += lr.WeightNetto
		r.BruttoWeight += lr.WeightBrutto
		r.ProcessWeight += ProcessWeight(lr.WeightNetto, lr.WeightBrutto)
		r.MaterialCost += lr.MaterialCost
		r.Layers = append(r.Layers, lr)
	}
	return r, nil
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
