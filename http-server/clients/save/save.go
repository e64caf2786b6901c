package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"quote-calc/http-server/response"
	"quote-calc/internal/storage"
)

type ClientCreator interface {
	CreateClient(ctx context.Context, c storage.Client) error
}

func SaveClient(log *slog.Logger, clients ClientCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clients.SaveClient"

		var req storage.Client
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "Missing required field 'name'", http.StatusBadRequest)
			return
		}
		req.ID = uuid.NewString()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := clients.CreateClient(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("client created", slog.String("id", req.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, req)
	}
}
