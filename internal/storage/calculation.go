package storage

import (
	"strings"
	"time"

	"quote-calc/internal/service/calculation"
)

// Calculation is a saved quote: the tabs of one client request with their items
// and the last computed results.
type Calculation struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ClientID  *string           `json:"clientId"`
	Tabs      []calculation.Tab `json:"tabs"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type CalculationHeader struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClientID  *string   `json:"clientId"`
	TabCount  int       `json:"tabCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tab returns the tab with id.
func (c *Calculation) Tab(id string) (*calculation.Tab, bool) {
	for i := range c.Tabs {
		if c.Tabs[i].ID == id {
			return &c.Tabs[i], true
		}
	}
	return nil, false
}

// AssignIDs gives an id from newID to the calculation and to every tab, item,
// custom process and custom curve that has none.
func (c *Calculation) AssignIDs(newID func() string) {
	if c.ID == "" {
		c.ID = newID()
	}
	for i := range c.Tabs {
		AssignTabIDs(&c.Tabs[i], newID)
	}
}

func AssignTabIDs(t *calculation.Tab, newID func() string) {
	if t.ID == "" {
		t.ID = newID()
	}
	for i := range t.Items {
		if t.Items[i].ID == "" {
			t.Items[i].ID = newID()
		}
	}
	for i := range t.CustomProcesses {
		if t.CustomProcesses[i].ID == "" {
			t.CustomProcesses[i].ID = newID()
		}
	}
	for i := range t.CustomCurves {
		if t.CustomCurves[i].ID == "" {
			t.CustomCurves[i].ID = newID()
		}
	}
}

// NormalizeClientID treats an empty client id as no client.
func NormalizeClientID(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}
