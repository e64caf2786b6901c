package calculation

// materialPrice returns the tab material price, falling back to the catalog
// price of the tab material for unit.
func (c Catalog) materialPrice(tab *Tab, unit PriceUnit) float64 {
	if price := tab.MaterialPrice.Float(); price != 0 {
		return price
	}
	m, ok := c.material(tab.MaterialID)
	if !ok {
		return 0
	}
	return m.price(unit)
}

func (m Material) price(unit PriceUnit) float64 {
	if unit == PerSquareMeter {
		return m.PricePerM2
	}
	return m.PricePerKg
}

// fillAreal completes empty areal fields from a catalog material. An explicit
// thickness or density typed by the user is never overridden by the catalog
// surface weight.
func fillAreal(thickness, density, surfaceWeight *Number, m Material) {
	if surfaceWeight.Float() > 0 {
		return
	}
	if thickness.Float() == 0 {
		*thickness = Number(m.Thickness)
	}
	if density.Float() == 0 {
		*density = Number(m.Density)
	}
	if thickness.Float()*density.Float() == 0 {
		*surfaceWeight = Number(m.SurfaceWeight)
	}
}

func (c Catalog) fillSheet(s SheetMaterial) SheetMaterial {
	m, ok := c.material(s.MaterialID)
	if !ok {
		return s
	}
	fillAreal(&s.Thickness, &s.Density, &s.SurfaceWeight, m)
	if s.Price.Float() == 0 {
		s.Price = Number(m.price(s.PriceUnit))
	}
	return s
}

func (c Catalog) fillLayer(l Layer) Layer {
	m, ok := c.material(l.MaterialID)
	if !ok {
		return l
	}
	fillAreal(&l.Thickness, &l.Density, &l.SurfaceWeight, m)
	if l.Price.Float() == 0 {
		l.Price = Number(m.price(l.PriceUnit))
	}
	return l
}

// volumeDensity returns g/cm³. Catalog densities are kg/m³.
func (c Catalog) volumeDensity(v *VolumeInput) float64 {
	if d := v.Density.Float(); d > 0 {
		return d
	}
	if m, ok := c.material(v.MaterialID); ok {
		return m.Density / 1000
	}
	return 0
}
