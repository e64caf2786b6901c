package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"quote-calc/http-server/catalog/validate"
	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
)

type CatalogCreator interface {
	CreateMaterial(ctx context.Context, m calculation.Material) error
	CreatePackagingComposition(ctx context.Context, c calculation.PackagingComposition) error
}

func SaveMaterial(log *slog.Logger, catalog CatalogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.SaveMaterial"

		var req calculation.Material
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if msg := validate.Material(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		req.ID = uuid.NewString()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.CreateMaterial(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("material created", slog.String("id", req.ID), slog.String("name", req.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, req)
	}
}

func SavePackagingComposition(log *slog.Logger, catalog CatalogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.SavePackagingComposition"

		var req calculation.PackagingComposition
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if msg := validate.PackagingComposition(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		req.ID = uuid.NewString()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.CreatePackagingComposition(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		log.Info("packaging composition created", slog.String("id", req.ID), slog.String("name", req.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, req)
	}
}
