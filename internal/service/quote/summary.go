package quote

import (
	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type Summary struct {
	CalculationID string       `json:"calculationId"`
	Name          string       `json:"name"`
	Tabs          []TabSummary `json:"tabs"`
	Items         int          `json:"items"`
	Priced        int          `json:"priced"`
	Revenue       float64      `json:"revenue"`
	Profit        float64      `json:"profit"`
}

type TabSummary struct {
	TabID   string           `json:"tabId"`
	Name    string           `json:"name"`
	Mode    calculation.Mode `json:"calculationType"`
	Items   int              `json:"items"`
	Priced  int              `json:"priced"`
	Missing []string         `json:"missing"`
	Revenue float64          `json:"revenue"`
	Profit  float64          `json:"profit"`
}

// Summarize aggregates revenue and profit over the cached results of every
// item. Items without results contribute nothing and are listed as missing.
func Summarize(c *storage.Calculation) Summary {
	sum := Summary{
		CalculationID: c.ID,
		Name:          c.Name,
		Tabs:          make([]TabSummary, 0, len(c.Tabs)),
	}

	for _, tab := range c.Tabs {
		ts := TabSummary{
			TabID:   tab.ID,
			Name:    tab.Name,
			Mode:    tab.Mode.Normalize(),
			Items:   len(tab.Items),
			Missing: []string{},
		}
		for _, it := range tab.Items {
			if it.Results == nil {
				ts.Missing = append(ts.Missing, it.PartID)
				continue
			}
			ts.Priced++
			ts.Revenue += it.Revenue()
			ts.Profit += it.Profit()
		}

		sum.Items += ts.Items
		sum.Priced += ts.Priced
		sum.Revenue += ts.Revenue
		sum.Profit += ts.Profit
		sum.Tabs = append(sum.Tabs, ts)
	}

	return sum
}
