package calculation

// Pricing is the result of layering margin and SG&A on top of a total cost.
type Pricing struct {
	TotalCost       float64
	TotalWithMargin float64
	TotalWithSGA    float64
}

// LayerPricing sums the positive cost components, then applies margin and SG&A
// percentages in that order.
func LayerPricing(components []float64, margin, sga float64) Pricing {
	var total float64
	for _, c := range components {
		if c > 0 {
			total += c
		}
	}

	withMargin := total * (1 + margin/100)
	return Pricing{
		TotalCost:       total,
		TotalWithMargin: withMargin,
		TotalWithSGA:    withMargin * (1 + sga/100),
	}
}

// shiftCost converts a process time in seconds to € with a rate per 8-hour shift.
func shiftCost(seconds, ratePerShift float64) float64 {
	return seconds / 3600 * (ratePerShift / 8)
}
