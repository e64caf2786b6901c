package calculation

type ProcessUnit string

const (
	PerPiece ProcessUnit = "euro/szt"
	PerKg    ProcessUnit = "euro/kg"
	PerShift ProcessUnit = "euro/8h"
)

// CustomProcess is a user defined process priced per piece, per kg or per
// 8-hour shift. For PerShift, Efficiency is the number of pieces produced in a
// shift; otherwise it is a multiplier.
type CustomProcess struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Cost       Number      `json:"cost"`
	Unit       ProcessUnit `json:"unit"`
	Efficiency Number      `json:"efficiency"`
}

// PieceCost returns the process cost for one part; processWeight is in grams.
func (p CustomProcess) PieceCost(processWeight float64) float64 {
	cost := p.Cost.Float()
	efficiency := p.Efficiency.Float()

	switch p.Unit {
	case PerShift:
		if efficiency <= 0 {
			return 0
		}
		return cost / efficiency
	case PerKg:
		return cost * (processWeight / 1000) * multiplier(efficiency)
	default:
		return cost * multiplier(efficiency)
	}
}

func multiplier(efficiency float64) float64 {
	if efficiency == 0 {
		return 1
	}
	return efficiency
}

// CustomProcessesCost prices every process and returns the total with a per
// process breakdown keyed by process id.
func CustomProcessesCost(processes []CustomProcess, processWeight float64) (float64, map[string]float64) {
	if len(processes) == 0 {
		return 0, nil
	}

	var total float64
	breakdown := make(map[string]float64, len(processes))
	for _, p := range processes {
		c := p.PieceCost(processWeight)
		breakdown[p.ID] += c
		total += c
	}
	return total, breakdown
}
