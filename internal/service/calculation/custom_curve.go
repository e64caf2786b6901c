package calculation

import "strings"

type InputMode string

const (
	InputX InputMode = "x"
	InputY InputMode = "y"
)

type BindSource string

const (
	BindManual       BindSource = "manual"
	BindWeight       BindSource = "weight"
	BindBruttoWeight BindSource = "bruttoWeight"
)

// CustomCurve is a user defined curve priced through its y value: the y amount,
// expressed in YUnit, is multiplied by YCost.
type CustomCurve struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Points         Curve      `json:"points"`
	XUnit          string     `json:"xUnit"`
	YUnit          string     `json:"yUnit"`
	YCost          Number     `json:"yCost"`
	InputMode      InputMode  `json:"inputMode"`
	AutoBindSource BindSource `json:"autoBindSource"`
}

// CurveCost is the evaluation of one custom curve for an item.
type CurveCost struct {
	Input float64 `json:"input"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Cost  float64 `json:"cost"`
}

// Evaluate reads the curve at input. Inputs in y mode are reverse interpolated.
func (c CustomCurve) Evaluate(input float64) CurveCost {
	cc := CurveCost{Input: input}
	if c.InputMode == InputY {
		cc.Y = input
		cc.X = ReverseInterpolate(input, c.Points)
	} else {
		cc.X = input
		cc.Y = Interpolate(input, c.Points)
	}
	cc.Cost = UnitCost(cc.Y, c.YUnit, c.YCost.Float())
	return cc
}

// UnitCost converts an amount in unit to a cost with rate. Time rates are per
// hour and mass rates per kilogram.
func UnitCost(amount float64, unit string, rate float64) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "s", "sec", "second", "seconds":
		return amount / 3600 * rate
	case "min", "minute", "minutes":
		return amount / 60 * rate
	case "h", "hour", "hours":
		return amount * rate
	case "g", "gram", "grams":
		return amount / 1000 * rate
	default:
		// kg, kilograms and unknown units
		return amount * rate
	}
}

// curveInput picks the value a custom curve is evaluated at: the item weight for
// auto-bound curves, the manual input otherwise.
func curveInput(c CustomCurve, item *Item, netto, brutto float64) float64 {
	switch c.AutoBindSource {
	case BindWeight:
		return netto
	case BindBruttoWeight:
		return brutto
	}
	if v, ok := item.CustomCurveValues[c.ID]; ok {
		return v.Input.Float()
	}
	return 0
}

// CustomCurvesCost evaluates every curve of a tab for an item. Curves whose input
// is not positive are skipped.
func CustomCurvesCost(curves []CustomCurve, item *Item, netto, brutto float64) (float64, map[string]CurveCost) {
	if len(curves) == 0 {
		return 0, nil
	}

	var total float64
	details := make(map[string]CurveCost)
	for _, c := range curves {
		input := curveInput(c, item, netto, brutto)
		if input <= 0 {
			continue
		}
		cc := c.Evaluate(input)
		details[c.ID] = cc
		total += cc.Cost
	}
	return total, details
}
