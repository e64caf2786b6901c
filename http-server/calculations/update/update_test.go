package update

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type MockCalculationUpdater struct {
	mock.Mock
}

func (m *MockCalculationUpdater) GetCalculation(ctx context.Context, id string) (*storage.Calculation, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*storage.Calculation), args.Error(1)
}

func (m *MockCalculationUpdater) UpdateCalculation(ctx context.Context, c *storage.Calculation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCalculationUpdater) DeleteCalculation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func router(calcs CalculationUpdater) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Put("/api/calculations/{id}", UpdateCalculation(log, calcs))
	r.Delete("/api/calculations/{id}", DeleteCalculation(log, calcs))
	r.Put("/api/calculations/{id}/tabs/{tabId}", UpdateTab(log, calcs))
	r.Post("/api/calculations/{id}/tabs/{tabId}/mode", SwitchTabMode(log, calcs))
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func stored() *storage.Calculation {
	return &storage.Calculation{
		ID:   "c1",
		Name: "RFQ",
		Tabs: []calculation.Tab{{
			ID:    "t1",
			Mode:  calculation.ModeWeight,
			Items: []calculation.Item{{ID: "i1", PartID: "P-1", Weight: 800, Margin: 12}},
		}},
	}
}

func TestUpdateCalculation_Success(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)
	calcs.On("UpdateCalculation", mock.Anything, mock.MatchedBy(func(c *storage.Calculation) bool {
		return c.Name == "RFQ rev B" && *c.ClientID == "client-1" && len(c.Tabs) == 1 && !c.UpdatedAt.IsZero()
	})).Return(nil)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c1", `{"name": "RFQ rev B", "clientId": "client-1"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	calcs.AssertExpectations(t)
}

func TestUpdateCalculation_NotFound(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c9").Return(nil, storage.ErrNotFound)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c9", `{"name": "x"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateTab_ModeChangeNeedsConfirm(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c1/tabs/t1",
		`{"calculationType": "surface", "items": [{"id": "i1", "partId": "P-1", "weight": 800}]}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	calcs.AssertNotCalled(t, "UpdateCalculation", mock.Anything, mock.Anything)
}

func TestUpdateTab_ConfirmedModeChangeResetsItems(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)
	calcs.On("UpdateCalculation", mock.Anything, mock.Anything).Return(nil)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c1/tabs/t1?confirm=true",
		`{"calculationType": "surface", "items": [{"id": "i1", "partId": "P-1", "weight": 800, "margin": 12}]}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var tab calculation.Tab
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tab))
	assert.Equal(t, "t1", tab.ID)
	assert.Equal(t, calculation.ModeSurface, tab.Mode)
	require.Len(t, tab.Items, 1)
	assert.Zero(t, tab.Items[0].Weight.Float())
	assert.Equal(t, calculation.Number(12), tab.Items[0].Margin)
	assert.NotNil(t, tab.Items[0].Surface)
}

func TestUpdateTab_SameModeKeepsData(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)
	calcs.On("UpdateCalculation", mock.Anything, mock.Anything).Return(nil)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c1/tabs/t1",
		`{"calculationType": "weight", "items": [{"id": "i1", "partId": "P-1", "weight": 900}, {"partId": "P-2"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var tab calculation.Tab
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tab))
	assert.Equal(t, calculation.Number(900), tab.Items[0].Weight)
	assert.NotEmpty(t, tab.Items[1].ID)
}

func TestUpdateTab_UnknownTab(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)

	rr := do(router(calcs), http.MethodPut, "/api/calculations/c1/tabs/t9", `{}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSwitchTabMode(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("GetCalculation", mock.Anything, "c1").Return(stored(), nil)
	calcs.On("UpdateCalculation", mock.Anything, mock.Anything).Return(nil)

	h := router(calcs)

	rr := do(h, http.MethodPost, "/api/calculations/c1/tabs/t1/mode", `{"calculationType": "volume"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(h, http.MethodPost, "/api/calculations/c1/tabs/t1/mode?confirm=true", `{"calculationType": "volume"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var tab calculation.Tab
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tab))
	assert.Equal(t, calculation.ModeVolume, tab.Mode)
	assert.NotNil(t, tab.Items[0].Volume)

	rr = do(h, http.MethodPost, "/api/calculations/c1/tabs/t1/mode", `{"calculationType": "plasma"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCalculation(t *testing.T) {
	calcs := new(MockCalculationUpdater)
	calcs.On("DeleteCalculation", mock.Anything, "c1").Return(nil)
	calcs.On("DeleteCalculation", mock.Anything, "c2").Return(storage.ErrNotFound)

	h := router(calcs)

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/api/calculations/c1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/api/calculations/c2", "").Code)
}
