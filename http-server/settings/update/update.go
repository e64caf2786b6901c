package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/storage"
)

type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, st storage.Settings) error
}

func UpdateSettings(log *slog.Logger, settings SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.UpdateSettings"

		var req storage.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.SGA < 0 {
			http.Error(w, "SG&A must not be negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := settings.UpdateSettings(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("settings updated", slog.Float64("sga", req.SGA))

		render.JSON(w, r, req)
	}
}
