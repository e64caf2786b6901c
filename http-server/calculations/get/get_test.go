package get

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quote-calc/internal/service/quote"
	"quote-calc/internal/storage"
)

type MockCalculationsGetter struct {
	mock.Mock
}

func (m *MockCalculationsGetter) GetCalculations(ctx context.Context) ([]storage.CalculationHeader, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]storage.CalculationHeader), args.Error(1)
}

func (m *MockCalculationsGetter) GetCalculation(ctx context.Context, id string) (*storage.Calculation, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*storage.Calculation), args.Error(1)
}

type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) Summary(ctx context.Context, id string) (*quote.Summary, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*quote.Summary), args.Error(1)
}

func router(calcs CalculationsGetter, sums SummaryProvider) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Get("/api/calculations", GetCalculations(log, calcs))
	r.Get("/api/calculations/{id}", GetCalculation(log, calcs))
	r.Get("/api/calculations/{id}/summary", GetSummary(log, sums))
	return r
}

func TestGetCalculations(t *testing.T) {
	calcs := new(MockCalculationsGetter)
	calcs.On("GetCalculations", mock.Anything).Return([]storage.CalculationHeader{{ID: "a", Name: "RFQ", TabCount: 2}}, nil)

	rr := httptest.NewRecorder()
	router(calcs, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculations", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got []storage.CalculationHeader
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TabCount)
}

func TestGetCalculation_NotFound(t *testing.T) {
	calcs := new(MockCalculationsGetter)
	calcs.On("GetCalculation", mock.Anything, "nope").Return(nil, storage.ErrNotFound)

	rr := httptest.NewRecorder()
	router(calcs, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculations/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetSummary(t *testing.T) {
	sums := new(MockSummaryProvider)
	sums.On("Summary", mock.Anything, "c1").Return(&quote.Summary{CalculationID: "c1", Revenue: 1500, Profit: 200}, nil)

	rr := httptest.NewRecorder()
	router(nil, sums).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculations/c1/summary", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got quote.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.InDelta(t, 1500.0, got.Revenue, 1e-9)
	assert.InDelta(t, 200.0, got.Profit, 1e-9)
}

func TestGetSummary_Error(t *testing.T) {
	sums := new(MockSummaryProvider)
	sums.On("Summary", mock.Anything, "c1").Return(nil, assert.AnError)

	rr := httptest.NewRecorder()
	router(nil, sums).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculations/c1/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}
