package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quote-calc/http-server/response"
	"quote-calc/internal/service/calculation"
)

type CatalogGetter interface {
	GetMaterials(ctx context.Context) ([]calculation.Material, error)
	GetPackagingCompositions(ctx context.Context) ([]calculation.PackagingComposition, error)
}

func GetMaterials(log *slog.Logger, catalog CatalogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetMaterials"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		materials, err := catalog.GetMaterials(ctx)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, materials)
	}
}

func GetPackagingCompositions(log *slog.Logger, catalog CatalogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetPackagingCompositions"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		compositions, err := catalog.GetPackagingCompositions(ctx)
		if err != nil {
			response.Error(w, log, op, err)
			return
		}

		render.JSON(w, r, compositions)
	}
}
