package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

type MockCatalogUpdater struct {
	mock.Mock
}

func (m *MockCatalogUpdater) UpdateMaterial(ctx context.Context, mat calculation.Material) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockCatalogUpdater) DeleteMaterial(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUpdater) UpdatePackagingComposition(ctx context.Context, c calculation.PackagingComposition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogUpdater) DeletePackagingComposition(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func router(catalog CatalogUpdater) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Put("/materials/{id}", UpdateMaterial(log, catalog))
	r.Delete("/materials/{id}", DeleteMaterial(log, catalog))
	r.Put("/packaging/{id}", UpdatePackagingComposition(log, catalog))
	r.Delete("/packaging/{id}", DeletePackagingComposition(log, catalog))
	return r
}

func do(h http.Handler, method, target, body string) int {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rr.Code
}

func TestUpdateMaterial(t *testing.T) {
	catalog := new(MockCatalogUpdater)
	catalog.On("UpdateMaterial", mock.Anything, calculation.Material{ID: "m1", Name: "PP", PricePerKg: 2}).Return(nil)
	catalog.On("UpdateMaterial", mock.Anything, mock.MatchedBy(func(m calculation.Material) bool { return m.ID == "m9" })).Return(storage.ErrNotFound)

	h := router(catalog)

	assert.Equal(t, http.StatusOK, do(h, http.MethodPut, "/materials/m1", `{"id": "other", "name": "PP", "pricePerKg": 2}`))
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPut, "/materials/m9", `{"name": "PP"}`))
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPut, "/materials/m1", `{"name": ""}`))
}

func TestUpdatePackagingComposition_ReservedID(t *testing.T) {
	catalog := new(MockCatalogUpdater)

	assert.Equal(t, http.StatusBadRequest, do(router(catalog), http.MethodPut, "/packaging/custom", `{"name": "Manual"}`))
	catalog.AssertNotCalled(t, "UpdatePackagingComposition", mock.Anything, mock.Anything)
}

func TestDeleteCatalogEntries(t *testing.T) {
	catalog := new(MockCatalogUpdater)
	catalog.On("DeleteMaterial", mock.Anything, "m1").Return(nil)
	catalog.On("DeletePackagingComposition", mock.Anything, "p1").Return(storage.ErrNotFound)

	h := router(catalog)

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/materials/m1", ""))
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/packaging/p1", ""))
}
