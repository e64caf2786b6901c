package calculation

import "errors"

// Calculate computes the results of one item of tab: the mode calculator
// resolves weights and surfaces and prices the material, the shared process,
// custom and packaging costs are added, then margin and sga are layered on top.
//
// Results are nil when the item lacks the input driving its mode. The only error
// is ErrTriangleUnderdetermined for surface items. Neither tab nor item is modified.
func Calculate(tab *Tab, item *Item, catalog Catalog, sga float64) (*Results, error) {
	in := costInput{tab: tab, item: item, catalog: catalog}

	r, err := calculatorFor(tab.Mode)(in)
	if err != nil || r == nil {
		return nil, err
	}

	if r.Mode != ModeHeatshield {
		r.BakingTime = Interpolate(r.ProcessWeight, tab.Curves.Baking)
		r.BakingCost = shiftCost(r.BakingTime, tab.BakingCost.Float())
		r.CleaningTime = Interpolate(r.ProcessWeight, tab.Curves.Cleaning)
		r.CleaningCost = shiftCost(r.CleaningTime, tab.CleaningCost.Float())
	}

	r.HandlingCost = tab.HandlingCost.Float()
	r.CustomProcessesCost, r.CustomProcesses = CustomProcessesCost(tab.CustomProcesses, r.ProcessWeight)
	r.CustomCurvesCost, r.CustomCurves = CustomCurvesCost(tab.CustomCurves, item, r.NettoWeight, r.BruttoWeight)
	r.PackagingCost = PackagingCost(item.Packaging, catalog.Packaging)

	r.Margin = item.Margin.Float()
	r.SGA = sga
	p := LayerPricing(r.components(), r.Margin, sga)
	r.TotalCost = p.TotalCost
	r.TotalWithMargin = p.TotalWithMargin
	r.TotalWithSGA = p.TotalWithSGA

	return r, nil
}

// TabOutcome counts the items of a recalculated tab.
type TabOutcome struct {
	Computed int
	Pending  int
	// Invalid holds part ids of items whose input is contradictory.
	Invalid []string
}

// RecalculateTab replaces the cached results of every item of tab. sga is used
// when the tab carries no SG&A of its own.
func RecalculateTab(tab *Tab, catalog Catalog, sga float64) TabOutcome {
	var out TabOutcome
	effective := tab.EffectiveSGA(sga)

	for i := range tab.Items {
		item := &tab.Items[i]

		r, err := Calculate(tab, item, catalog, effective)
		item.Results = r

		switch {
		case errors.Is(err, ErrTriangleUnderdetermined):
			out.Invalid = append(out.Invalid, item.PartID)
		case r == nil:
			out.Pending++
		default:
			out.Computed++
		}
	}
	return out
}
