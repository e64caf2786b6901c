package get

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quote-calc/internal/storage"
)

type MockSettingsGetter struct {
	mock.Mock
}

func (m *MockSettingsGetter) GetSettings(ctx context.Context) (*storage.Settings, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*storage.Settings), args.Error(1)
}

func TestGetSettings(t *testing.T) {
	settings := new(MockSettingsGetter)
	settings.On("GetSettings", mock.Anything).Return(&storage.Settings{SGA: 8.5}, nil)

	rr := httptest.NewRecorder()
	GetSettings(slog.New(slog.NewTextHandler(io.Discard, nil)), settings).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"sga": 8.5}`, rr.Body.String())
}
