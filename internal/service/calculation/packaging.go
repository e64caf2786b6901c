package calculation

// CustomComposition marks packaging priced by a manual total instead of a catalog entry.
const CustomComposition = "custom"

// PackagingComposition is a packaging catalog entry.
type PackagingComposition struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PackagesPerPallet float64 `json:"packagesPerPallet"`
	PalletsPerSpace   float64 `json:"palletsPerSpace"`
	CompositionCost   float64 `json:"compositionCost"`
}

type Packaging struct {
	PartsPerLayer    Number `json:"partsPerLayer"`
	Layers           Number `json:"layers"`
	ManualPartsInBox bool   `json:"manualPartsInBox"`
	PartsInBox       Number `json:"partsInBox"`
	CompositionID    string `json:"compositionId"`
	CustomPrice      Number `json:"customPrice"`
}

// BoxParts returns how many parts one box holds.
func (p Packaging) BoxParts() float64 {
	if p.ManualPartsInBox {
		return p.PartsInBox.Float()
	}
	return p.PartsPerLayer.Float() * p.Layers.Float()
}

// PackagingCost returns the packaging cost per part. Unknown compositions and
// empty boxes cost nothing.
func PackagingCost(p *Packaging, catalog []PackagingComposition) float64 {
	if p == nil {
		return 0
	}

	partsInBox := p.BoxParts()
	if partsInBox <= 0 {
		return 0
	}

	if p.CompositionID == CustomComposition {
		return safeDiv(p.CustomPrice.Float(), partsInBox)
	}

	for _, c := range catalog {
		if c.ID != p.CompositionID {
			continue
		}
		partsPerPallet := partsInBox * c.PackagesPerPallet
		partsPerSpace := partsPerPallet * c.PalletsPerSpace
		return safeDiv(c.CompositionCost, partsPerSpace)
	}
	return 0
}
