package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quote-calc/http-server/catalog/validate"
	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
)

type CatalogUpdater interface {
	UpdateMaterial(ctx context.Context, m calculation.Material) error
	DeleteMaterial(ctx context.Context, id string) error
	UpdatePackagingComposition(ctx context.Context, c calculation.PackagingComposition) error
	DeletePackagingComposition(ctx context.Context, id string) error
}

func UpdateMaterial(log *slog.Logger, catalog CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.UpdateMaterial"

		var req calculation.Material
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.ID = chi.URLParam(r, "id")
		if msg := validate.Material(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.UpdateMaterial(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, req)
	}
}

func DeleteMaterial(log *slog.Logger, catalog CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.DeleteMaterial"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.DeleteMaterial(ctx, chi.URLParam(r, "id")); err != nil {
			response.Error(w, log, op, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func UpdatePackagingComposition(log *slog.Logger, catalog CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.UpdatePackagingComposition"

		var req calculation.PackagingComposition
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.ID = chi.URLParam(r, "id")
		if msg := validate.PackagingComposition(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.UpdatePackagingComposition(ctx, req); err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, req)
	}
}

func DeletePackagingComposition(log *slog.Logger, catalog CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.DeletePackagingComposition"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := catalog.DeletePackagingComposition(ctx, chi.URLParam(r, "id")); err != nil {
			response.Error(w, log, op, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
