package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"quote-calc/internal/service/calculation"
)

func sequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestCalculation_AssignIDs(t *testing.T) {
	c := &Calculation{
		Tabs: []calculation.Tab{{
			ID:              "keep",
			Items:           []calculation.Item{{PartID: "A"}, {ID: "item", PartID: "B"}},
			CustomProcesses: []calculation.CustomProcess{{Name: "deburr"}},
			CustomCurves:    []calculation.CustomCurve{{ID: "curve"}, {Name: "paint"}},
		}},
	}

	c.AssignIDs(sequence())

	assert.Equal(t, "id-1", c.ID)
	tab := c.Tabs[0]
	assert.Equal(t, "keep", tab.ID)
	assert.Equal(t, "id-2", tab.Items[0].ID)
	assert.Equal(t, "item", tab.Items[1].ID)
	assert.Equal(t, "id-3", tab.CustomProcesses[0].ID)
	assert.Equal(t, "curve", tab.CustomCurves[0].ID)
	assert.Equal(t, "id-4", tab.CustomCurves[1].ID)
}

func TestCalculation_Tab(t *testing.T) {
	c := &Calculation{Tabs: []calculation.Tab{{ID: "a"}, {ID: "b"}}}

	tab, ok := c.Tab("b")
	assert.True(t, ok)
	tab.Name = "renamed"
	assert.Equal(t, "renamed", c.Tabs[1].Name)

	_, ok = c.Tab("c")
	assert.False(t, ok)
}

func TestNormalizeClientID(t *testing.T) {
	blank := "  "
	id := " c-1 "

	assert.Nil(t, NormalizeClientID(nil))
	assert.Nil(t, NormalizeClientID(&blank))
	assert.Equal(t, "c-1", *NormalizeClientID(&id))
}
