package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/storage"
)

type ClientUpdater interface {
	UpdateClient(ctx context.Context, c storage.Client) error
	DeleteClient(ctx context.Context, id string) error
}

func UpdateClient(log *slog.Logger, clients ClientUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clients.UpdateClient"

		var req storage.Client
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.ID = chi.URLParam(r, "id")
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "Missing required field 'name'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := clients.UpdateClient(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, req)
	}
}

// DeleteClient removes a client. Its calculations are kept without a client.
func DeleteClient(log *slog.Logger, clients ClientUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clients.DeleteClient"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := clients.DeleteClient(ctx, id); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("client deleted", slog.String("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
