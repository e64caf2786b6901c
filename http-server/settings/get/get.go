package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/storage"
)

type SettingsGetter interface {
	GetSettings(ctx context.Context) (*storage.Settings, error)
}

func GetSettings(log *slog.Logger, settings SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.GetSettings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := settings.GetSettings(ctx)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, st)
	}
}
