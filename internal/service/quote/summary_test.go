package quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

func TestSummarize(t *testing.T) {
	calc := &storage.Calculation{
		ID:   "c",
		Name: "RFQ",
		Tabs: []calculation.Tab{
			{
				ID:   "a",
				Mode: "",
				Items: []calculation.Item{
					{PartID: "A-1", AnnualVolume: 1000, Margin: 20, Results: &calculation.Results{TotalCost: 10, TotalWithSGA: 13.2}},
					{PartID: "A-2", AnnualVolume: 500},
				},
			},
			{
				ID:   "b",
				Mode: calculation.ModeSurface,
				Items: []calculation.Item{
					{PartID: "B-1", AnnualVolume: 10, Margin: 50, Results: &calculation.Results{TotalCost: 4, TotalWithSGA: 6}},
				},
			},
		},
	}

	sum := Summarize(calc)

	require.Len(t, sum.Tabs, 2)
	assert.Equal(t, calculation.ModeWeight, sum.Tabs[0].Mode)
	assert.Equal(t, []string{"A-2"}, sum.Tabs[0].Missing)
	assert.InDelta(t, 13200.0, sum.Tabs[0].Revenue, 1e-9)
	assert.InDelta(t, 2000.0, sum.Tabs[0].Profit, 1e-9)
	assert.Empty(t, sum.Tabs[1].Missing)

	assert.Equal(t, 3, sum.Items)
	assert.Equal(t, 2, sum.Priced)
	assert.InDelta(t, 13260.0, sum.Revenue, 1e-9)
	assert.InDelta(t, 2020.0, sum.Profit, 1e-9)
}

func TestSummary_LoadError(t *testing.T) {
	st := new(MockQuoteStorage)
	st.On("GetCalculation", mock.Anything, "x").Return(nil, storage.ErrNotFound)

	_, err := NewQuoteService(discardLogger(), st, 0).Summary(context.Background(), "x")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
